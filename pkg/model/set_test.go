package model

import (
	"strings"
	"testing"

	"github.com/eslam-aboutaleb/Interview-Helper-Agent/pkg/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateQuestionSetReq_Validate(t *testing.T) {
	valid := CreateQuestionSetReq{
		Name:        "Backend screening round",
		JobTitle:    "Backend Engineer",
		QuestionIDs: []int64{3, 1, 2},
	}
	require.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		mutate func(*CreateQuestionSetReq)
	}{
		{"blank name", func(r *CreateQuestionSetReq) { r.Name = " " }},
		{"name too long", func(r *CreateQuestionSetReq) { r.Name = strings.Repeat("a", 256) }},
		{"blank job title", func(r *CreateQuestionSetReq) { r.JobTitle = "" }},
		{"no members", func(r *CreateQuestionSetReq) { r.QuestionIDs = nil }},
		{"duplicate members", func(r *CreateQuestionSetReq) { r.QuestionIDs = []int64{1, 2, 1} }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid
			tt.mutate(&req)
			err := req.Validate()
			require.Error(t, err)
			assert.Equal(t, apperror.KindValidation, apperror.KindOf(err))
		})
	}
}

func TestCreateRatingReq_Validate(t *testing.T) {
	require.NoError(t, (&CreateRatingReq{QuestionID: 1, Rating: 1.0}).Validate())
	require.NoError(t, (&CreateRatingReq{QuestionID: 1, Rating: 5.0}).Validate())
	require.NoError(t, (&CreateRatingReq{QuestionID: 1, Rating: 3.5, Feedback: "solid"}).Validate())

	tests := []struct {
		name string
		req  CreateRatingReq
	}{
		{"zero question id", CreateRatingReq{QuestionID: 0, Rating: 3}},
		{"negative question id", CreateRatingReq{QuestionID: -1, Rating: 3}},
		{"rating too low", CreateRatingReq{QuestionID: 1, Rating: 0.9}},
		{"rating too high", CreateRatingReq{QuestionID: 1, Rating: 5.1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			require.Error(t, err)
			assert.Equal(t, apperror.KindValidation, apperror.KindOf(err))
		})
	}
}
