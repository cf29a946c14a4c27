package shareurl

import "fmt"

const (
	ParamData        = "data_b64"
	ParamTitle       = "title"
	ParamDescription = "description"

	SuffixBase64 = "_b64"
)

// QuestionParam: question1, question2_b64, ...
func QuestionParam(n int, suffix string) string {
	return fmt.Sprintf("question%d%s", n, suffix)
}

// OptionParam: q1_option2, q3_option1_b64, ...
func OptionParam(n, m int, suffix string) string {
	return fmt.Sprintf("q%d_option%d%s", n, m, suffix)
}

func AnswerParam(n int, suffix string) string {
	return fmt.Sprintf("q%d_answer%s", n, suffix)
}
