package validation

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/blog-posts-api/internal/models"
)

var (
	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	slugRegex  = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)
)

// ValidationError represents a single field-level validation error
type ValidationError struct {
	Field   string      `json:"field"`
	Message string      `json:"message"`
	Value   interface{} `json:"value,omitempty"`
}

// ValidatePostInput validates the request body for creating a post
func ValidatePostInput(in *models.PostInput) []ValidationError {
	var errors []ValidationError

	if strings.TrimSpace(in.Title) == "" {
		errors = append(errors, ValidationError{Field: "title", Message: "title is required"})
	}
	if strings.TrimSpace(in.Body) == "" {
		errors = append(errors, ValidationError{Field: "body", Message: "body is required"})
	}
	if in.Slug != "" && !slugRegex.MatchString(in.Slug) {
		errors = append(errors, ValidationError{Field: "slug", Message: "slug must be kebab-case (lowercase letters, numbers, hyphens)", Value: in.Slug})
	}

	return errors
}

// ValidatePostPatch validates the request body for a full or partial
// post update. Absent fields are not errors; present fields must hold
// usable values.
func ValidatePostPatch(patch *models.PostPatch) []ValidationError {
	var errors []ValidationError

	if patch.Title != nil && strings.TrimSpace(*patch.Title) == "" {
		errors = append(errors, ValidationError{Field: "title", Message: "title must not be empty"})
	}
	if patch.Body != nil && strings.TrimSpace(*patch.Body) == "" {
		errors = append(errors, ValidationError{Field: "body", Message: "body must not be empty"})
	}
	if patch.Slug != nil && !slugRegex.MatchString(*patch.Slug) {
		errors = append(errors, ValidationError{Field: "slug", Message: "slug must be kebab-case (lowercase letters, numbers, hyphens)", Value: *patch.Slug})
	}

	return errors
}

// ValidateCommentInput validates the request body for creating a comment
func ValidateCommentInput(in *models.CommentInput) []ValidationError {
	var errors []ValidationError

	if in.PostID <= 0 {
		errors = append(errors, ValidationError{Field: "post_id", Message: "post_id is required"})
	}
	errors = append(errors, validateCommentBody(in.Body)...)

	return errors
}

// ValidateCommentPatch validates the request body for a full or
// partial comment update
func ValidateCommentPatch(patch *models.CommentPatch) []ValidationError {
	if patch.Body == nil {
		return nil
	}
	return validateCommentBody(*patch.Body)
}

func validateCommentBody(body string) []ValidationError {
	if strings.TrimSpace(body) == "" {
		return []ValidationError{{Field: "body", Message: "body is required"}}
	}
	if wordCount := len(strings.Fields(body)); wordCount > models.MaxCommentWords {
		return []ValidationError{{
			Field:   "body",
			Message: fmt.Sprintf("body exceeds maximum of %d words (has %d)", models.MaxCommentWords, wordCount),
		}}
	}
	return nil
}

// ValidateRegisterInput validates the request body for creating an account
func ValidateRegisterInput(in *models.RegisterInput) []ValidationError {
	var errors []ValidationError

	if in.Email == "" {
		errors = append(errors, ValidationError{Field: "email", Message: "email is required"})
	} else if !emailRegex.MatchString(in.Email) {
		errors = append(errors, ValidationError{Field: "email", Message: "invalid email format", Value: in.Email})
	}
	if strings.TrimSpace(in.Name) == "" {
		errors = append(errors, ValidationError{Field: "name", Message: "name is required"})
	}
	if len(in.Password) < 8 {
		errors = append(errors, ValidationError{Field: "password", Message: "password must be at least 8 characters"})
	}

	return errors
}
