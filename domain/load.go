package domain

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// ReadQuiz читает квиз в JSON-формате (title, description, questionData)
func ReadQuiz(r io.Reader) (Quiz, error) {
	var quiz Quiz
	if err := json.NewDecoder(r).Decode(&quiz); err != nil {
		return Quiz{}, fmt.Errorf("failed to decode quiz: %w", err)
	}
	return quiz, nil
}

// LoadQuiz загружает квиз из файла
func LoadQuiz(path string) (Quiz, error) {
	file, err := os.Open(path)
	if err != nil {
		return Quiz{}, fmt.Errorf("failed to open quiz file: %w", err)
	}
	defer file.Close()

	quiz, err := ReadQuiz(file)
	if err != nil {
		return Quiz{}, fmt.Errorf("%s: %w", path, err)
	}
	return quiz, nil
}
