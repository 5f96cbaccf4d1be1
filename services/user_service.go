package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/appfrabric/roilux/models"
)

// findOrCreateUser resolves the User owning a submission by exact email
// match, creating one from the submission's identity fields when absent.
// An existing user's stored fields are never updated here: submissions keep
// their own snapshot of name/company/phone.
//
// Must run inside the submission's transaction so a created User never ends
// up without its dependent record.
func findOrCreateUser(tx *gorm.DB, name, email, company, phone, language, country string) (*models.User, error) {
	var user models.User
	err := tx.Where("email = ?", email).First(&user).Error
	if err == nil {
		return &user, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	user = models.User{
		Name:     name,
		Email:    email,
		Company:  company,
		Phone:    phone,
		Language: language,
		Country:  country,
		IsActive: true,
	}
	if err := tx.Create(&user).Error; err != nil {
		// Lost a race on the unique email index: the other writer's row is
		// authoritative, so retry the lookup instead of failing the submission.
		var existing models.User
		if lookupErr := tx.Where("email = ?", email).First(&existing).Error; lookupErr == nil {
			return &existing, nil
		}
		return nil, err
	}
	return &user, nil
}

// archivedLastOrder sorts archived records after everything else and newest
// first within each group. Listing endpoints rely on this exact ordering.
const archivedLastOrder = "CASE WHEN status = 'archived' THEN 1 ELSE 0 END, created_at DESC"
