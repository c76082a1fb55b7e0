package registration

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/spec-kit/fit-training-service/internal/domain"
)

func str(s string) *string { return &s }

func TestValidateStep(t *testing.T) {
	t.Run("step 1 requires credentials and a 10-char national id", func(t *testing.T) {
		d := NewDraft("d1")
		errs := ValidateStep(1, d)
		assert.Len(t, errs, 3)
		assert.Contains(t, errs, "staff_id")
		assert.Contains(t, errs, "password")
		assert.Contains(t, errs, "national_id")

		d.Apply(Fields{StaffID: str("3000"), Password: str("secret"), NationalID: str("123456789")})
		errs = ValidateStep(1, d)
		assert.Equal(t, map[string]string{"national_id": "Must be 10 digits"}, errs)

		d.Apply(Fields{NationalID: str("1234567890")})
		assert.Empty(t, ValidateStep(1, d))
	})

	t.Run("step 2 requires name, category from the fixed set and gender", func(t *testing.T) {
		d := NewDraft("d2")
		d.Apply(Fields{FullName: str("Sara Al-Otaibi"), JobCategory: str("Astronaut"), Gender: str("Female")})
		errs := ValidateStep(2, d)
		assert.Equal(t, map[string]string{"job_category": "Category required"}, errs)

		d.Apply(Fields{JobCategory: str("Nurse")})
		assert.Empty(t, ValidateStep(2, d))
	})

	t.Run("step 3 requires an @ in email and a mobile number", func(t *testing.T) {
		d := NewDraft("d3")
		d.Apply(Fields{Email: str("sara.example.com"), Mobile: str("")})
		errs := ValidateStep(3, d)
		assert.Contains(t, errs, "email")
		assert.Contains(t, errs, "mobile")

		d.Apply(Fields{Email: str("sara@example.com"), Mobile: str("0559988776")})
		assert.Empty(t, ValidateStep(3, d))
	})

	t.Run("step 4 requires a mask unless category is Admin", func(t *testing.T) {
		d := NewDraft("d4")
		errs := ValidateStep(4, d)
		assert.Equal(t, map[string]string{"mask_type": "Select a mask"}, errs)

		d.Apply(Fields{MaskType: str("3M 1870+")})
		assert.Empty(t, ValidateStep(4, d))
	})

	t.Run("validation is step-local", func(t *testing.T) {
		// Invalid contact data must not block earlier steps.
		d := NewDraft("d5")
		d.Apply(Fields{
			StaffID: str("3000"), Password: str("pw"), NationalID: str("1234567890"),
			FullName: str("Mohammed"), JobCategory: str("Physician"), Gender: str("Male"),
			Email: str("not-an-email"), Mobile: str(""),
		})
		assert.Empty(t, ValidateStep(1, d))
		assert.Empty(t, ValidateStep(2, d))
		assert.NotEmpty(t, ValidateStep(3, d))
	})
}

func TestAdminMaskDerivation(t *testing.T) {
	assert := assert.New(t)

	d := NewDraft("d6")
	d.Apply(Fields{JobCategory: str("Admin")})
	assert.Equal(domain.MaskNotApplicable, d.MaskType)

	// Step 4 auto-validates for Admin with no mask selection error.
	assert.Empty(ValidateStep(4, d))
}

func TestDraftBackKeepsData(t *testing.T) {
	d := NewDraft("d7")
	d.Apply(Fields{StaffID: str("3000"), FullName: str("Mohammed")})
	d.Step = 3
	d.Back()
	assert.Equal(t, 2, d.Step)
	assert.Equal(t, "3000", d.StaffID)
	assert.Equal(t, "Mohammed", d.FullName)

	d.Step = FirstStep
	d.Back()
	assert.Equal(t, FirstStep, d.Step)
}
