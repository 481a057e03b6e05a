package validation_test

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"

	"job-portal-backend/pkg/validation"
)

type signupForm struct {
	UserName    string `json:"user_name" validate:"required,valid_name"`
	Email       string `json:"email" validate:"required,email"`
	PhoneNumber string `json:"phone_number" validate:"required,valid_phone"`
	Password    string `json:"password" validate:"required,min=4" sanitize:"-"`
}

func newValidator() *validator.Validate {
	v := validator.New()
	validation.RegisterValidators(v)
	return v
}

func TestTranslateAggregatesAllFailures(t *testing.T) {
	v := newValidator()

	err := v.Struct(&signupForm{
		UserName:    "Asha Kumar",
		Email:       "",   // missing
		PhoneNumber: "",   // missing
		Password:    "ok", // too short
	})
	assert.Error(t, err)

	fields := validation.Translate(err)
	assert.Len(t, fields, 3)

	byField := map[string]string{}
	for _, f := range fields {
		byField[f.Field] = f.Message
	}
	assert.Equal(t, "Email is required", byField["email"])
	assert.Equal(t, "Phone number is required", byField["phone_number"])
	assert.Equal(t, "Password must be at least 4 characters long", byField["password"])
}

func TestTranslateUsesWireNames(t *testing.T) {
	v := newValidator()

	err := v.Struct(&signupForm{
		UserName:    "Asha Kumar",
		Email:       "not-an-email",
		PhoneNumber: "+919876543210",
		Password:    "s3cret",
	})
	assert.Error(t, err)

	fields := validation.Translate(err)
	assert.Len(t, fields, 1)
	assert.Equal(t, "email", fields[0].Field)
	assert.Equal(t, "Email is not valid", fields[0].Message)
}

func TestCustomValidators(t *testing.T) {
	v := newValidator()

	t.Run("phone numbers", func(t *testing.T) {
		type form struct {
			Phone string `json:"phone_number" validate:"valid_phone"`
		}
		assert.NoError(t, v.Struct(&form{Phone: "+919876543210"}))
		assert.NoError(t, v.Struct(&form{Phone: "9876543210"}))
		assert.Error(t, v.Struct(&form{Phone: "98-76-54"}))
		assert.Error(t, v.Struct(&form{Phone: "call me"}))
	})

	t.Run("names", func(t *testing.T) {
		type form struct {
			Name string `json:"user_name" validate:"valid_name"`
		}
		assert.NoError(t, v.Struct(&form{Name: "Asha Kumar"}))
		assert.NoError(t, v.Struct(&form{Name: "O'Brien-Smith"}))
		assert.Error(t, v.Struct(&form{Name: "<script>"}))
	})

	t.Run("emoji", func(t *testing.T) {
		type form struct {
			Title string `json:"test_name" validate:"no_emoji"`
		}
		assert.NoError(t, v.Struct(&form{Title: "Go Basics"}))
		assert.Error(t, v.Struct(&form{Title: "Go Basics \U0001F600"}))
	})
}

func TestTrimAndEscape(t *testing.T) {
	type form struct {
		Name     string `json:"name"`
		Bio      string `json:"bio"`
		Password string `json:"password" sanitize:"-"`
		Skills   []string
	}

	f := &form{
		Name:     "  Asha <b>Kumar</b>  ",
		Bio:      "likes & dislikes",
		Password: "  <keep-as-is>  ",
		Skills:   []string{" Go ", "SQL<"},
	}

	validation.Trim(f)
	assert.Equal(t, "Asha <b>Kumar</b>", f.Name)
	assert.Equal(t, []string{"Go", "SQL<"}, f.Skills)
	assert.Equal(t, "  <keep-as-is>  ", f.Password)

	validation.Escape(f)
	assert.Equal(t, "Asha &lt;b&gt;Kumar&lt;/b&gt;", f.Name)
	assert.Equal(t, "likes &amp; dislikes", f.Bio)
	assert.Equal(t, "  <keep-as-is>  ", f.Password)
	assert.Equal(t, []string{"Go", "SQL&lt;"}, f.Skills)
}

func TestApostropheNamesSurviveThePipeline(t *testing.T) {
	v := newValidator()

	type form struct {
		Name string `json:"user_name" validate:"required,valid_name"`
	}

	// Trim, validate, escape: the order handlers apply. The format rule
	// must judge the raw apostrophe, not its escaped form.
	f := &form{Name: "  O'Brien  "}
	validation.Trim(f)
	assert.NoError(t, v.Struct(f))

	validation.Escape(f)
	assert.Equal(t, "O&#39;Brien", f.Name)
}
