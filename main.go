package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"quizlink/domain"
	"quizlink/environment"
	"quizlink/messages"
	"quizlink/preview"
	"quizlink/shareurl"
	textcases "quizlink/text_cases"

	"github.com/joho/godotenv"
)

func main() {
	godotenv.Load()

	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	mainEnv := environment.GetMainEnvironment()

	fs := flag.NewFlagSet("quizlink", flag.ContinueOnError)
	fs.SetOutput(stderr)
	baseURL := fs.String("base", mainEnv.BaseURL, "base URL of the quiz page (QUIZ_BASE_URL)")
	quizFile := fs.String("quiz", mainEnv.QuizFile, "JSON quiz file, built-in sample if empty (QUIZ_FILE)")
	previewFile := fs.String("preview", mainEnv.PreviewFile, "write an HTML page with all links to this file (QUIZ_PREVIEW_FILE)")
	methodList := fs.String("method", "", "comma-separated methods: json, fields, plain (QUIZ_METHODS)")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	var methods []shareurl.Method
	if strings.TrimSpace(*methodList) != "" {
		methods = environment.GetMethods("-method", *methodList)
	} else {
		methods = environment.GetMethods("QUIZ_METHODS", mainEnv.MethodList)
	}

	quiz := textcases.SampleQuiz()
	if *quizFile != "" {
		var err error
		quiz, err = domain.LoadQuiz(*quizFile)
		if err != nil {
			fmt.Fprintln(stderr, err)
			return 1
		}
		log.Printf("Loaded quiz %q with %d questions from %s", quiz.Title, len(quiz.Questions), *quizFile)
	}

	if err := messages.PrintReport(stdout, *baseURL, quiz, methods...); err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	if *previewFile != "" {
		if err := preview.WriteFile(*previewFile, *baseURL, quiz); err != nil {
			fmt.Fprintln(stderr, err)
			return 1
		}
	}
	return 0
}
