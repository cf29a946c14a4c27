package shareurl

import (
	"encoding/base64"
	"net/url"

	"quizlink/domain"
)

// EncodeText — текстобезопасное преобразование: стандартный base64 с паддингом
func EncodeText(s string) string {
	return base64.StdEncoding.EncodeToString([]byte(s))
}

// Base64JSON кладет весь квиз одним параметром data_b64
func Base64JSON(baseURL string, quiz domain.Quiz) (string, error) {
	payload, err := MarshalQuiz(quiz)
	if err != nil {
		return "", err
	}
	encoded := base64.StdEncoding.EncodeToString(payload)
	return baseURL + "?" + ParamData + "=" + url.QueryEscape(encoded), nil
}

// Base64Fields кодирует каждое поле отдельным base64-параметром
func Base64Fields(baseURL string, quiz domain.Quiz) string {
	params := FieldParams(quiz, SuffixBase64, EncodeText)
	return baseURL + "?" + params.Encode()
}

// Plain — обычное URL-кодирование, без base64
func Plain(baseURL string, quiz domain.Quiz) string {
	params := FieldParams(quiz, "", nil)
	return baseURL + "?" + params.Encode()
}

// FieldParams раскладывает квиз по позиционным параметрам.
// transform применяется к каждому значению; nil оставляет значения как есть.
func FieldParams(quiz domain.Quiz, suffix string, transform func(string) string) *Params {
	if transform == nil {
		transform = func(s string) string { return s }
	}

	params := &Params{}
	if quiz.Title != "" {
		params.Add(ParamTitle+suffix, transform(quiz.Title))
	}
	if quiz.Description != "" {
		params.Add(ParamDescription+suffix, transform(quiz.Description))
	}

	for i, q := range quiz.Questions {
		n := i + 1
		params.Add(QuestionParam(n, suffix), transform(q.Question))
		for j, opt := range q.Options {
			params.Add(OptionParam(n, j+1, suffix), transform(opt))
		}
		if q.Answer != "" {
			params.Add(AnswerParam(n, suffix), transform(q.Answer))
		}
	}
	return params
}
