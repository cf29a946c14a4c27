package messages

import (
	"fmt"
	"io"
	"strings"

	"quizlink/domain"
	"quizlink/shareurl"
	textcases "quizlink/text_cases"
)

const dividerWidth = 80

var (
	heavyDivider = strings.Repeat("=", dividerWidth)
	lightDivider = strings.Repeat("-", dividerWidth)
)

// Напечатать заголовок секции с разделителем под ним
func printSection(w io.Writer, title string) {
	fmt.Fprintln(w, title)
	fmt.Fprintln(w, lightDivider)
}

// Пустая строка после секции
func endSection(w io.Writer) {
	fmt.Fprint(w, "\n\n")
}

// PrintReport печатает ссылки выбранными методами и пример кода для браузера.
// Без methods печатаются все три метода.
func PrintReport(w io.Writer, baseURL string, quiz domain.Quiz, methods ...shareurl.Method) error {
	if len(methods) == 0 {
		methods = shareurl.Methods()
	}

	fmt.Fprintln(w, heavyDivider)
	fmt.Fprintln(w, "QUIZ URL GENERATOR")
	fmt.Fprintln(w, heavyDivider)
	endSection(w)

	for _, m := range methods {
		link, err := shareurl.Generate(m, baseURL, quiz)
		if err != nil {
			return fmt.Errorf("failed to generate %s link: %w", m, err)
		}
		printSection(w, fmt.Sprintf("Method %d: %s", int(m), m.Title()))
		fmt.Fprintln(w, link)
		endSection(w)
	}

	snippet, err := textcases.BrowserSnippet(baseURL, quiz)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, heavyDivider)
	printSection(w, "JavaScript Code Example:")
	_, err = fmt.Fprintln(w, snippet)
	return err
}
