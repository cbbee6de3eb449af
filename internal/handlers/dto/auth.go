package dto

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type GoogleLoginRequest struct {
	Email string `json:"email"`
}

// UpdateProfileRequest is the allow-list of updatable profile fields.
// Pointers distinguish "not sent" from a zero value; array fields are
// replaced whole, never merged.
type UpdateProfileRequest struct {
	Email           string    `json:"email"`
	Name            *string   `json:"name,omitempty"`
	Phone           *string   `json:"phone,omitempty"`
	Address         *string   `json:"address,omitempty"`
	Sex             *string   `json:"sex,omitempty"`
	Age             *int      `json:"age,omitempty"`
	Bio             *string   `json:"bio,omitempty"`
	ProfilePicture  *[]byte   `json:"profilePicture,omitempty"`
	ExperienceLevel *string   `json:"experienceLevel,omitempty"`
	MedicalHistory  *[]string `json:"medicalHistory,omitempty"`
	PastTreks       *[]string `json:"pastTreks,omitempty"`
}

// Fields flattens the set fields into store update form.
func (r *UpdateProfileRequest) Fields() map[string]any {
	fields := map[string]any{}
	if r.Name != nil {
		fields["name"] = *r.Name
	}
	if r.Phone != nil {
		fields["phone"] = *r.Phone
	}
	if r.Address != nil {
		fields["address"] = *r.Address
	}
	if r.Sex != nil {
		fields["sex"] = *r.Sex
	}
	if r.Age != nil {
		fields["age"] = *r.Age
	}
	if r.Bio != nil {
		fields["bio"] = *r.Bio
	}
	if r.ProfilePicture != nil {
		fields["profilePicture"] = *r.ProfilePicture
	}
	if r.ExperienceLevel != nil {
		fields["experienceLevel"] = *r.ExperienceLevel
	}
	if r.MedicalHistory != nil {
		fields["medicalHistory"] = *r.MedicalHistory
	}
	if r.PastTreks != nil {
		fields["pastTreks"] = *r.PastTreks
	}
	return fields
}
