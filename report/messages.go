// SPDX-License-Identifier: MIT

package report

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Message keys. The English text is the key itself.
const (
	MsgSizePrompt    = "Size of the square matrices n x n (n is a power of two, e.g. 2, 4, 8): "
	MsgEnterMatrix   = "Enter the elements of matrix %s (%d x %d):"
	MsgNotPowerOfTwo = "Error: Strassen's algorithm needs n to be a power of two."
	MsgPadHint       = "Choose another n or pad the matrices with zeros."
	MsgStandardC     = "C (standard multiplication)"
	MsgStrassenC     = "C (Strassen's algorithm)"
	MsgStrassenTitle = "=== Strassen's algorithm ==="
	MsgTooSmall      = "The matrices are too small to split into blocks (n < 2)."
	MsgMatch         = "Results match."
	MsgMismatch      = "WARNING: results do NOT match."
	MsgColN          = "n"
	MsgColStandard   = "standard, ms"
	MsgColStrassen   = "strassen, ms"
	MsgColSpeedup    = "speedup"
	MsgWritten       = "Done. Timings written to %s"
)

// Supported lists the tags with a registered catalog; the first is the default.
var Supported = []language.Tag{language.English, language.Russian}

var russian = map[string]string{
	MsgSizePrompt:    "Размер квадратных матриц n x n (n - степень двойки, например 2, 4, 8): ",
	MsgEnterMatrix:   "Введите элементы матрицы %s (%d x %d):",
	MsgNotPowerOfTwo: "Ошибка: для алгоритма Штрассена n должно быть степенью двойки.",
	MsgPadHint:       "Вы можете выбрать другое n или дополнять матрицы нулями.",
	MsgStandardC:     "C (стандартное умножение)",
	MsgStrassenC:     "C (алгоритм Штрассена)",
	MsgStrassenTitle: "=== Алгоритм Штрассена ===",
	MsgTooSmall:      "Размер матриц слишком мал для разбиения на блоки (n < 2).",
	MsgMatch:         "Результаты совпадают.",
	MsgMismatch:      "ВНИМАНИЕ: результаты НЕ совпадают.",
	MsgColN:          "n",
	MsgColStandard:   "стандарт, мс",
	MsgColStrassen:   "Штрассен, мс",
	MsgColSpeedup:    "ускорение",
	MsgWritten:       "Готово. Данные записаны в %s",
}

func init() {
	for key, text := range russian {
		_ = message.SetString(language.Russian, key, text)
	}
}

// ParseLanguage matches s ("ru", "en-US", "ru-RU", ...) against Supported.
// Unknown or empty input yields English.
func ParseLanguage(s string) language.Tag {
	if s == "" {
		return Supported[0]
	}
	tag, err := language.Parse(s)
	if err != nil {
		return Supported[0]
	}
	_, idx, conf := language.NewMatcher(Supported).Match(tag)
	if conf == language.No {
		return Supported[0]
	}

	return Supported[idx]
}
