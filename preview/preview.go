package preview

import (
	"fmt"
	"html/template"
	"io"
	"log"
	"os"

	"quizlink/domain"
	"quizlink/shareurl"
)

var pageTemplate = template.Must(template.New("preview").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
</head>
<body>
<h1 id="quiz-title">{{.Title}}</h1>
{{- if .Description}}
<p id="quiz-description">{{.Description}}</p>
{{- end}}
<p id="quiz-stats">{{.QuestionCount}} questions</p>
<ul id="share-links">
{{- range .Links}}
<li><a class="share-link" data-method="{{.Method}}" href="{{.URL}}">{{.Label}}</a></li>
{{- end}}
</ul>
</body>
</html>
`))

type link struct {
	Method string
	Label  string
	URL    string
}

type page struct {
	Title         string
	Description   string
	QuestionCount int
	Links         []link
}

// Render пишет HTML-страницу со ссылками всех методов
func Render(w io.Writer, baseURL string, quiz domain.Quiz) error {
	p := page{
		Title:         quiz.Title,
		Description:   quiz.Description,
		QuestionCount: len(quiz.Questions),
	}
	if p.Title == "" {
		p.Title = "Untitled quiz"
	}

	for _, m := range shareurl.Methods() {
		u, err := shareurl.Generate(m, baseURL, quiz)
		if err != nil {
			return fmt.Errorf("failed to generate %s link: %w", m, err)
		}
		p.Links = append(p.Links, link{Method: m.String(), Label: m.Title(), URL: u})
	}

	if err := pageTemplate.Execute(w, p); err != nil {
		return fmt.Errorf("failed to render preview: %w", err)
	}
	return nil
}

// WriteFile сохраняет превью в файл
func WriteFile(path, baseURL string, quiz domain.Quiz) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create preview file: %w", err)
	}

	if err := Render(file, baseURL, quiz); err != nil {
		file.Close()
		return err
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("failed to close preview file: %w", err)
	}

	log.Printf("Preview written to %s", path)
	return nil
}
