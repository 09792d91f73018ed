package entity_test

import (
	"errors"
	"testing"

	"inkpress/internal/domain/entity"
)

func TestParseAssessKind(t *testing.T) {
	tests := []struct {
		name    string
		token   string
		want    entity.AssessKind
		wantErr bool
	}{
		{name: "agree", token: "agree", want: entity.AssessAgree},
		{name: "disagree", token: "disagree", want: entity.AssessDisagree},
		{name: "empty", token: "", wantErr: true},
		{name: "unknown token", token: "upvote", wantErr: true},
		{name: "wrong case", token: "AGREE", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := entity.ParseAssessKind(tt.token)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseAssessKind(%q) = %v, want error", tt.token, got)
				}
				var ve *entity.ValidationError
				if !errors.As(err, &ve) {
					t.Fatalf("error type = %T, want *entity.ValidationError", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseAssessKind(%q) error = %v", tt.token, err)
			}
			if got != tt.want {
				t.Fatalf("ParseAssessKind(%q) = %v, want %v", tt.token, got, tt.want)
			}
		})
	}
}

func TestArticleIsPublished(t *testing.T) {
	pub := &entity.Article{Status: entity.StatusPublish}
	if !pub.IsPublished() {
		t.Error("published article reported as not published")
	}
	draft := &entity.Article{Status: entity.StatusDraft}
	if draft.IsPublished() {
		t.Error("draft article reported as published")
	}
}
