package models

import "go.mongodb.org/mongo-driver/bson"

// SiteSettingsID is the id of the only settings document.
const SiteSettingsID = "site_settings"

// SiteSettings holds the public contact details shown across the site.
type SiteSettings struct {
	ID          string `bson:"id" json:"id"`
	Email       string `bson:"email" json:"email"`
	Phone       string `bson:"phone" json:"phone"`
	Address     string `bson:"address" json:"address"`
	CompanyName string `bson:"company_name" json:"company_name"`
}

// DefaultSiteSettings is served until an admin saves settings for the first time.
func DefaultSiteSettings() SiteSettings {
	return SiteSettings{
		ID:          SiteSettingsID,
		Email:       "contact@huiledesfax.com",
		Phone:       "+216 00 000 000",
		Address:     "Sfax, Tunisia",
		CompanyName: "IJL International",
	}
}

// SiteSettingsUpdate is a partial update of the settings document.
type SiteSettingsUpdate struct {
	Email       *string `json:"email" validate:"omitempty,min=5,max=255"`
	Phone       *string `json:"phone" validate:"omitempty,min=1,max=50"`
	Address     *string `json:"address" validate:"omitempty,min=1,max=500"`
	CompanyName *string `json:"company_name" validate:"omitempty,min=1,max=200"`
}

// Changes returns the fields to $set.
func (u SiteSettingsUpdate) Changes() (bson.M, error) {
	changes := fieldSet{}
	changes.setString("email", u.Email)
	changes.setString("phone", u.Phone)
	changes.setString("address", u.Address)
	changes.setString("company_name", u.CompanyName)
	return changes.result()
}
