package postgres

import (
	"context"
	"encoding/json"

	"refnet/internal/domain/entity"
	domainerrors "refnet/internal/domain/errors"
	"refnet/internal/domain/repository"
	"refnet/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// accountDetailsRepository implements the domain AccountDetailsRepository
// interface using GORM.
type accountDetailsRepository struct {
	db *gorm.DB
}

// NewAccountDetailsRepository is the constructor for accountDetailsRepository.
func NewAccountDetailsRepository(db *gorm.DB) repository.AccountDetailsRepository {
	return &accountDetailsRepository{db: db}
}

// Create persists a new account-details record. The primary key on user_id
// guarantees at most one companion record per user.
func (repo *accountDetailsRepository) Create(ctx context.Context, details *entity.AccountDetails) error {
	detailsM, err := fromAccountDetailsDomain(details)
	if err != nil {
		return err
	}

	if err := repo.db.WithContext(ctx).Create(detailsM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrRegistrationFailed.WrapMessage("account details already exist for this user")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrRegistrationFailed.WrapMessage("invalid user reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create account details")
	}

	details.UpdatedAt = detailsM.UpdatedAt

	return nil
}

// FindByUserID retrieves the companion record for the given user.
func (repo *accountDetailsRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.AccountDetails, error) {
	var detailsM model.AccountDetailsModel
	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&detailsM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAccountDetailsNotFound
		}

		return nil, errors.Wrap(err, "failed to find account details by user id")
	}

	return toAccountDetailsDomain(&detailsM)
}

// FindByReferralCode retrieves the companion record carrying the given
// referral code.
func (repo *accountDetailsRepository) FindByReferralCode(ctx context.Context, code string) (*entity.AccountDetails, error) {
	var detailsM model.AccountDetailsModel
	if err := repo.db.WithContext(ctx).
		Where("referral_code = ?", code).
		First(&detailsM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAccountDetailsNotFound
		}

		return nil, errors.Wrap(err, "failed to find account details by referral code")
	}

	return toAccountDetailsDomain(&detailsM)
}

// Update modifies an existing account-details record.
func (repo *accountDetailsRepository) Update(ctx context.Context, details *entity.AccountDetails) error {
	detailsM, err := fromAccountDetailsDomain(details)
	if err != nil {
		return err
	}

	if err := repo.db.WithContext(ctx).Save(detailsM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update account details")
	}

	details.UpdatedAt = detailsM.UpdatedAt

	return nil
}

// --- Mapper Functions ---

// toAccountDetailsDomain converts a GORM AccountDetailsModel to a domain
// AccountDetails entity, decoding the JSONB document columns.
func toAccountDetailsDomain(data *model.AccountDetailsModel) (*entity.AccountDetails, error) {
	if data == nil {
		return nil, nil
	}

	details := &entity.AccountDetails{
		UserID:       data.UserID,
		ReferralCode: data.ReferralCode,
		Headline:     data.Headline,
		Location:     data.Location,
		Company:      data.Company,
		Bio:          data.Bio,
		UpdatedAt:    data.UpdatedAt,
	}

	if len(data.Skills) > 0 {
		if err := json.Unmarshal(data.Skills, &details.Skills); err != nil {
			return nil, errors.Wrap(err, "failed to decode skills document")
		}
	}
	if len(data.Links) > 0 {
		if err := json.Unmarshal(data.Links, &details.Links); err != nil {
			return nil, errors.Wrap(err, "failed to decode links document")
		}
	}

	return details, nil
}

// fromAccountDetailsDomain converts a domain AccountDetails entity to a GORM
// AccountDetailsModel, encoding the document fields as JSONB.
func fromAccountDetailsDomain(data *entity.AccountDetails) (*model.AccountDetailsModel, error) {
	if data == nil {
		return nil, nil
	}

	detailsM := &model.AccountDetailsModel{
		UserID:       data.UserID,
		ReferralCode: data.ReferralCode,
		Headline:     data.Headline,
		Location:     data.Location,
		Company:      data.Company,
		Bio:          data.Bio,
	}

	if data.Skills != nil {
		raw, err := json.Marshal(data.Skills)
		if err != nil {
			return nil, errors.Wrap(err, "failed to encode skills document")
		}
		detailsM.Skills = datatypes.JSON(raw)
	}
	if data.Links != nil {
		raw, err := json.Marshal(data.Links)
		if err != nil {
			return nil, errors.Wrap(err, "failed to encode links document")
		}
		detailsM.Links = datatypes.JSON(raw)
	}

	return detailsM, nil
}
