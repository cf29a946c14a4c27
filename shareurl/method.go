package shareurl

import (
	"errors"
	"fmt"
	"strings"

	"quizlink/domain"
)

var ErrUnknownMethod = errors.New("unknown encoding method")

type Method int

const (
	MethodBase64JSON Method = iota + 1
	MethodBase64Fields
	MethodPlain
)

var methodNames = map[Method]string{
	MethodBase64JSON:   "json",
	MethodBase64Fields: "fields",
	MethodPlain:        "plain",
}

// Methods возвращает все методы в порядке вывода
func Methods() []Method {
	return []Method{MethodBase64JSON, MethodBase64Fields, MethodPlain}
}

func (m Method) String() string {
	if name, ok := methodNames[m]; ok {
		return name
	}
	return fmt.Sprintf("method(%d)", int(m))
}

// Title — заголовок секции в отчете
func (m Method) Title() string {
	switch m {
	case MethodBase64JSON:
		return "Single Base64 JSON Parameter (Recommended)"
	case MethodBase64Fields:
		return "Individual Base64 Parameters"
	case MethodPlain:
		return "Regular URL Encoding (for comparison)"
	default:
		return m.String()
	}
}

func ParseMethod(s string) (Method, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for m, name := range methodNames {
		if name == s {
			return m, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownMethod, s)
}

// Generate строит ссылку выбранным методом
func Generate(m Method, baseURL string, quiz domain.Quiz) (string, error) {
	switch m {
	case MethodBase64JSON:
		return Base64JSON(baseURL, quiz)
	case MethodBase64Fields:
		return Base64Fields(baseURL, quiz), nil
	case MethodPlain:
		return Plain(baseURL, quiz), nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownMethod, m)
	}
}
