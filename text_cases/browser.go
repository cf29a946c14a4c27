package textcases

import (
	"fmt"
	"strings"
	"text/template"

	"quizlink/domain"
	"quizlink/shareurl"
)

var browserTemplate = template.Must(template.New("browser").Parse(`
// In browser JavaScript:
const quizData = {{.QuizJSON}};

// Method 1: Single base64 parameter
const jsonString = JSON.stringify(quizData);
const base64 = btoa(unescape(encodeURIComponent(jsonString)));
const url1 = '{{.BaseURL}}?data_b64=' + base64;

// Method 2: Individual base64 parameters
const params = new URLSearchParams();
params.append('title_b64', btoa(unescape(encodeURIComponent(quizData.title))));
params.append('description_b64', btoa(unescape(encodeURIComponent(quizData.description))));
quizData.questionData.forEach((q, index) => {
    const qNum = index + 1;
    params.append(` + "`question${qNum}_b64`" + `, btoa(unescape(encodeURIComponent(q.question))));
    q.options.forEach((opt, optIndex) => {
        params.append(` + "`q${qNum}_option${optIndex + 1}_b64`" + `, btoa(unescape(encodeURIComponent(opt))));
    });
    params.append(` + "`q${qNum}_answer_b64`" + `, btoa(unescape(encodeURIComponent(q.answer))));
});
const url2 = '{{.BaseURL}}?' + params.toString();
`))

// BrowserSnippet — пример JS-кода, который строит те же ссылки в браузере
func BrowserSnippet(baseURL string, quiz domain.Quiz) (string, error) {
	quizJSON, err := shareurl.MarshalQuizIndent(quiz)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	err = browserTemplate.Execute(&b, struct {
		QuizJSON string
		BaseURL  string
	}{
		QuizJSON: string(quizJSON),
		BaseURL:  baseURL,
	})
	if err != nil {
		return "", fmt.Errorf("failed to render browser snippet: %w", err)
	}
	return b.String(), nil
}
