package telegram

import (
	"errors"
	"strconv"
	"strings"
)

// Callback action constants.
const (
	actionSelect  = "sel"
	actionConfirm = "ok"
	actionNext    = "next"
	actionRetry   = "retry"
)

var ErrBadCallback = errors.New("malformed callback data")

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
	return callbackData{
		Action: parts[0],
		Params: parts[1:],
		Raw:    data,
	}
}

// intParam returns the i-th parameter as a non-negative integer.
func (cd callbackData) intParam(i int) (int, error) {
	if i >= len(cd.Params) {
		return 0, ErrBadCallback
	}
	n, err := strconv.Atoi(cd.Params[i])
	if err != nil || n < 0 {
		return 0, ErrBadCallback
	}
	return n, nil
}

// buildSelectCallback builds callback data for choosing the choice at original index idx.
func buildSelectCallback(position, idx int) string {
	return callbackData{
		Action: actionSelect,
		Params: []string{strconv.Itoa(position), strconv.Itoa(idx)},
	}.encode()
}

// buildConfirmCallback builds callback data for locking the current answer.
func buildConfirmCallback(position int) string {
	return callbackData{
		Action: actionConfirm,
		Params: []string{strconv.Itoa(position)},
	}.encode()
}

// buildNextCallback builds callback data for moving past a confirmed question.
func buildNextCallback(position int) string {
	return callbackData{
		Action: actionNext,
		Params: []string{strconv.Itoa(position)},
	}.encode()
}

// buildRetryCallback builds callback data for starting a new attempt.
func buildRetryCallback() string {
	return actionRetry
}
