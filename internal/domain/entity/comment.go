package entity

// AssessKind is a reader's verdict on a comment.
type AssessKind string

// Assessment tokens accepted by the assess endpoint.
const (
	AssessAgree    AssessKind = "agree"
	AssessDisagree AssessKind = "disagree"
)

// ParseAssessKind validates an assessment token from the request.
// Anything other than the two known tokens is a validation error.
func ParseAssessKind(s string) (AssessKind, error) {
	switch AssessKind(s) {
	case AssessAgree, AssessDisagree:
		return AssessKind(s), nil
	default:
		return "", &ValidationError{Field: "assess", Message: "must be 'agree' or 'disagree'"}
	}
}

// Comment represents a reader comment on an article. ParentID, when
// set, references exactly one other comment; the parent's own parent is
// never resolved (single-level threading). IP and Agent are captured at
// creation and immutable afterwards.
type Comment struct {
	Record
	ArticleID int64
	ParentID  *int64
	Content   string
	Name      string
	Email     string
	Website   string
	IP        string
	Agent     string
	Agree     int64
	Disagree  int64
}

// CommentDetail is a read view of a comment: the comment itself plus
// its resolved parent (nil when the comment is top-level), with Content
// rendered to display HTML on both.
type CommentDetail struct {
	Comment
	Parent *Comment
}
