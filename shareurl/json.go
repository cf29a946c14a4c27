package shareurl

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"unicode/utf8"

	"quizlink/domain"
)

// encoding/json молча заменяет битый UTF-8 на U+FFFD, и payload перестает совпадать с квизом
var ErrInvalidText = errors.New("quiz text is not valid UTF-8")

// MarshalQuiz сериализует квиз в компактный JSON без HTML-экранирования,
// чтобы "<", ">" и "&" в тексте вопросов попадали в payload как есть.
func MarshalQuiz(quiz domain.Quiz) ([]byte, error) {
	return marshal(quiz, "")
}

// MarshalQuizIndent — то же с отступом в два пробела (для примера кода).
func MarshalQuizIndent(quiz domain.Quiz) ([]byte, error) {
	return marshal(quiz, "  ")
}

func marshal(quiz domain.Quiz, indent string) ([]byte, error) {
	if err := checkText(quiz); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if indent != "" {
		enc.SetIndent("", indent)
	}
	if err := enc.Encode(withArrays(quiz)); err != nil {
		return nil, fmt.Errorf("failed to marshal quiz: %w", err)
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// withArrays заменяет nil-слайсы пустыми: страница квиза ждет массивы, а не null.
// Исходный квиз не меняется.
func withArrays(quiz domain.Quiz) domain.Quiz {
	questions := make([]domain.Question, len(quiz.Questions))
	for i, q := range quiz.Questions {
		if q.Options == nil {
			q.Options = []string{}
		}
		questions[i] = q
	}
	quiz.Questions = questions
	return quiz
}

func checkText(quiz domain.Quiz) error {
	check := func(field, s string) error {
		if !utf8.ValidString(s) {
			return fmt.Errorf("%w: %s", ErrInvalidText, field)
		}
		return nil
	}

	if err := check("title", quiz.Title); err != nil {
		return err
	}
	if err := check("description", quiz.Description); err != nil {
		return err
	}
	for i, q := range quiz.Questions {
		n := i + 1
		if err := check(QuestionParam(n, ""), q.Question); err != nil {
			return err
		}
		for j, opt := range q.Options {
			if err := check(OptionParam(n, j+1, ""), opt); err != nil {
				return err
			}
		}
		if err := check(AnswerParam(n, ""), q.Answer); err != nil {
			return err
		}
	}
	return nil
}
