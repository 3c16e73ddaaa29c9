package model

import (
	"reflect"
	"testing"
)

func TestOptionsRoundTrip(t *testing.T) {
	original := []string{"A", "B", "C"}

	encoded, err := EncodeOptions(original)
	if err != nil {
		t.Fatalf("EncodeOptions() error = %v", err)
	}

	decoded, ok := DecodeOptions(encoded)
	if !ok {
		t.Fatal("DecodeOptions() ok = false, want true")
	}
	if !reflect.DeepEqual(decoded, original) {
		t.Errorf("DecodeOptions() = %v, want %v", decoded, original)
	}
}

func TestDecodeOptionsMalformed(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{name: "not json", raw: "oops"},
		{name: "wrong shape", raw: `{"a":1}`},
		{name: "empty string", raw: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			options, ok := DecodeOptions(tt.raw)
			if ok {
				t.Error("DecodeOptions() ok = true, want false")
			}
			if options == nil || len(options) != 0 {
				t.Errorf("DecodeOptions() = %v, want empty list", options)
			}
		})
	}
}

func TestDecodeOptionsNullDegradesToEmpty(t *testing.T) {
	options, ok := DecodeOptions("null")
	if !ok {
		t.Error("DecodeOptions(null) ok = false, want true")
	}
	if options == nil || len(options) != 0 {
		t.Errorf("DecodeOptions(null) = %v, want empty list", options)
	}
}

func TestQuestionPublicWithholdsCorrectAnswer(t *testing.T) {
	q := Question{
		ID:            "q1",
		Question:      "2+2?",
		Options:       []string{"3", "4"},
		CorrectAnswer: "4",
	}

	public := q.Public()
	if public.ID != q.ID || public.Question != q.Question {
		t.Errorf("Public() = %+v, want id/question from %+v", public, q)
	}
	if !reflect.DeepEqual(public.Options, q.Options) {
		t.Errorf("Public().Options = %v, want %v", public.Options, q.Options)
	}
}
