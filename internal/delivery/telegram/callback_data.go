package telegram

import (
	"strconv"
	"strings"
)

// Callback action constants.
const (
	actionQuiz     = "quiz"
	actionTerms    = "terms"
	actionCategory = "cat"
)

// Quiz sub-actions.
const (
	quizStart  = "start"
	quizAnswer = "ans"
)

// callbackData represents structured callback data.
type callbackData struct {
	Action string
	Params []string
	Raw    string
}

// encode creates callback string.
func (cd callbackData) encode() string {
	if len(cd.Params) == 0 {
		return cd.Action
	}
	return cd.Action + ":" + strings.Join(cd.Params, ":")
}

// decodeCallback parses callback data string.
func decodeCallback(data string) callbackData {
	parts := strings.Split(data, ":")
	if len(parts) == 0 {
		return callbackData{Raw: data}
	}

	return callbackData{
		Action: parts[0],
		Params: parts[1:],
		Raw:    data,
	}
}

// buildTermsPageCallback builds callback data for a page of the terms list.
func buildTermsPageCallback(page int) string {
	return callbackData{
		Action: actionTerms,
		Params: []string{strconv.Itoa(page)},
	}.encode()
}

// buildCategoryCallback builds callback data for listing one category.
func buildCategoryCallback(category string) string {
	return callbackData{
		Action: actionCategory,
		Params: []string{category},
	}.encode()
}

// buildQuizStartCallback builds callback data for starting a quiz over a package.
func buildQuizStartCallback(packageKey string) string {
	return callbackData{
		Action: actionQuiz,
		Params: []string{quizStart, packageKey},
	}.encode()
}

// buildQuizAnswerCallback builds callback data for answering a quiz question.
func buildQuizAnswerCallback(sessionID int64, questionNum, answerIndex int) string {
	return callbackData{
		Action: actionQuiz,
		Params: []string{
			quizAnswer,
			strconv.FormatInt(sessionID, 10),
			strconv.Itoa(questionNum),
			strconv.Itoa(answerIndex),
		},
	}.encode()
}
