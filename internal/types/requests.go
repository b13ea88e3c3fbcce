package types

// SessionRequest is the identity payload submitted to POST /session.
type SessionRequest struct {
	Email string `json:"email" binding:"required,email"`
	Name  string `json:"name"`
}

// UpsertBiodataRequest carries the descriptive fields of a biodata.
// The owner email comes from the session token, never from the body.
type UpsertBiodataRequest struct {
	BiodataType           string `json:"biodata_type" binding:"required,oneof=Male Female"`
	Name                  string `json:"name" binding:"required"`
	ProfileImage          string `json:"profile_image"`
	DateOfBirth           string `json:"date_of_birth"`
	Height                string `json:"height"`
	Weight                string `json:"weight"`
	Age                   int    `json:"age"`
	Occupation            string `json:"occupation"`
	Race                  string `json:"race"`
	FathersName           string `json:"fathers_name"`
	MothersName           string `json:"mothers_name"`
	PermanentDivision     string `json:"permanent_division"`
	PresentDivision       string `json:"present_division"`
	ExpectedPartnerAge    string `json:"expected_partner_age"`
	ExpectedPartnerHeight string `json:"expected_partner_height"`
	ExpectedPartnerWeight string `json:"expected_partner_weight"`
	Mobile                string `json:"mobile"`
}

// PremiumRequestBody initiates the premium workflow for a biodata.
type PremiumRequestBody struct {
	Email     string `json:"email" binding:"required,email"`
	BiodataID int    `json:"biodata_id" binding:"required,gt=0"`
	Name      string `json:"name"`
}

// ApprovePremiumRequest approves the pending request for an owner.
type ApprovePremiumRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// FavoriteRequest adds a bookmark for the authenticated viewer.
type FavoriteRequest struct {
	BiodataID int `json:"biodata_id" binding:"required,gt=0"`
}

// PaymentIntentRequest asks the external gateway for a client secret.
type PaymentIntentRequest struct {
	Amount int64 `json:"amount" binding:"required,gt=0"`
}

// PaymentRecordRequest appends a completed-charge audit record.
type PaymentRecordRequest struct {
	Email     string `json:"email" binding:"required,email"`
	BiodataID int    `json:"biodata_id" binding:"required,gt=0"`
	Amount    int64  `json:"amount" binding:"required,gt=0"`
	IntentID  string `json:"intent_id"`
}

// CreateAccountRequest registers a membership account.
type CreateAccountRequest struct {
	Email string `json:"email" binding:"required,email"`
	Name  string `json:"name"`
}
