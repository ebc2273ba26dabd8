package domain

import (
	"errors"
	"testing"

	"github.com/peterldowns/testy/assert"
	"github.com/peterldowns/testy/check"
)

func valid() Registration {
	return Registration{
		Username:    "  otieno ",
		Password:    "12345678",
		CountryCode: "+254",
		PhoneNumber: "712345678",
	}
}

func TestRegistrationValidateDefaults(t *testing.T) {
	r := valid()
	phone, err := r.Validate()
	assert.NoError(t, err)
	check.Equal(t, "+254712345678", phone)
	check.Equal(t, "otieno", r.Username)
	check.Equal(t, RoleCustomer, r.Role)
	check.Equal(t, AccountIndividual, r.AccountType)
}

func TestRegistrationAcceptsFullNumber(t *testing.T) {
	r := valid()
	r.PhoneNumber = "+254712345678"
	phone, err := r.Validate()
	assert.NoError(t, err)
	check.Equal(t, "+254712345678", phone)
}

func TestRegistrationCountryAndPhone(t *testing.T) {
	cases := []struct {
		name    string
		country string
		phone   string
		want    error
	}{
		{"foreign country", "+1", "712345678", ErrUnsupportedCountry},
		{"missing country", "", "712345678", ErrUnsupportedCountry},
		{"short number", "+254", "71234567", ErrInvalidPhone},
		{"long number", "+254", "7123456789", ErrInvalidPhone},
		{"letters", "+254", "7123456ab", ErrInvalidPhone},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := valid()
			r.CountryCode, r.PhoneNumber = tc.country, tc.phone
			_, err := r.Validate()
			check.True(t, errors.Is(err, tc.want))
		})
	}
}

func TestRegistrationFieldErrors(t *testing.T) {
	r := Registration{
		CountryCode: "+254",
		PhoneNumber: "712345678",
		Password:    "short",
		Role:        "root",
		AccountType: AccountBusiness,
	}
	_, err := r.Validate()
	var verrs ValidationErrors
	assert.True(t, errors.As(err, &verrs))

	fields := map[string]string{}
	for _, fe := range verrs {
		fields[fe.Field] = fe.Message
	}
	check.Equal(t, "Required", fields["username"])
	check.Equal(t, "Must be at least 8 characters", fields["password"])
	check.NotEqual(t, "", fields["role"])
	check.Equal(t, "Required for business accounts", fields["companyName"])

	r = valid()
	r.AccountType = "charity"
	_, err = r.Validate()
	assert.True(t, errors.As(err, &verrs))
	check.Equal(t, "accountType", verrs[0].Field)
}

func TestValidRole(t *testing.T) {
	check.True(t, ValidRole(RoleTechnician))
	check.False(t, ValidRole("user"))
}
