package telegram

import (
	"reflect"
	"testing"
)

func TestCallbackDataRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"category toggle", buildCategoryCallback("Football")},
		{"difficulty", buildDifficultyCallback("hard")},
		{"count", buildCountCallback(15)},
		{"start", buildStartCallback()},
		{"answer", buildAnswerCallback(3, 2)},
		{"play again", buildPlayAgainCallback()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			decoded := decodeCallback(tt.data)
			if decoded.encode() != tt.data {
				t.Errorf("round trip %q -> %q", tt.data, decoded.encode())
			}
		})
	}
}

func TestDecodeAnswerCallback(t *testing.T) {
	decoded := decodeCallback(buildAnswerCallback(4, 1))

	if decoded.Action != actionQuiz {
		t.Errorf("action = %q, want %q", decoded.Action, actionQuiz)
	}
	want := []string{quizAnswer, "4", "1"}
	if !reflect.DeepEqual(decoded.Params, want) {
		t.Errorf("params = %v, want %v", decoded.Params, want)
	}
}
