package environment

import (
	"log"
	"os"
	"strings"

	"quizlink/shareurl"
	textcases "quizlink/text_cases"
)

type MainEnvironment struct {
	BaseURL     string
	QuizFile    string
	PreviewFile string
	MethodList  string
}

func GetMainEnvironment() MainEnvironment {

	baseURL := getBaseURL()

	return MainEnvironment{
		BaseURL:     baseURL,
		QuizFile:    strings.TrimSpace(os.Getenv("QUIZ_FILE")),
		PreviewFile: strings.TrimSpace(os.Getenv("QUIZ_PREVIEW_FILE")),
		MethodList:  strings.TrimSpace(os.Getenv("QUIZ_METHODS")),
	}
}

func getBaseURL() string {
	baseURL := strings.TrimSpace(os.Getenv("QUIZ_BASE_URL"))
	if baseURL == "" {
		return textcases.DefaultBaseURL
	}
	return baseURL
}

// GetMethods разбирает список методов через запятую.
// Пустой список означает все методы. source — откуда пришел список (для логов).
func GetMethods(source, list string) []shareurl.Method {
	if strings.TrimSpace(list) == "" {
		return shareurl.Methods()
	}
	methods := make([]shareurl.Method, 0)
	for i, s := range strings.Split(list, ",") {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		m, err := shareurl.ParseMethod(s)
		if err != nil {
			log.Printf("Ошибка парсинга метода #%d '%s' из %s: %v", i+1, s, source, err)
			continue
		}
		methods = append(methods, m)
	}
	if len(methods) == 0 {
		log.Printf("%s has no valid methods, using all", source)
		return shareurl.Methods()
	}
	return methods
}
