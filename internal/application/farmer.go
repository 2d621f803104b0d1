package application

import (
	"errors"

	"github.com/linskybing/herbtrace/internal/api/middleware"
	"github.com/linskybing/herbtrace/internal/config"
	"github.com/linskybing/herbtrace/internal/domain/audit"
	"github.com/linskybing/herbtrace/internal/domain/farmer"
	"github.com/linskybing/herbtrace/internal/repository"
	"github.com/linskybing/herbtrace/pkg/metrics"
	"github.com/linskybing/herbtrace/pkg/utils"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrFarmerAlreadyRegistered = errors.New("farmer already registered")
	ErrInvalidCredentials      = errors.New("invalid credentials")
	ErrFarmerNotFound          = errors.New("farmer not found")
	ErrPasswordHashFailure     = errors.New("failed to hash password")
)

type FarmerService struct {
	Repos *repository.Repos
}

func NewFarmerService(repos *repository.Repos) *FarmerService {
	return &FarmerService{
		Repos: repos,
	}
}

// Register creates a farmer account keyed by phone number. The unique index on
// phone backs up the pre-check when two registrations race.
func (s *FarmerService) Register(input farmer.RegisterInput, actor audit.Actor) (farmer.Farmer, error) {
	_, err := s.Repos.Farmer.GetFarmerByPhone(input.Phone)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return farmer.Farmer{}, err
	}
	if err == nil {
		return farmer.Farmer{}, ErrFarmerAlreadyRegistered
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return farmer.Farmer{}, ErrPasswordHashFailure
	}

	f := farmer.Farmer{
		Name:     input.Name,
		Phone:    input.Phone,
		Password: string(hashed),
	}

	err = s.Repos.ExecTx(func(tx *repository.Repos) error {
		if err := tx.Farmer.CreateFarmer(&f); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrFarmerAlreadyRegistered
			}
			return err
		}

		actor.ID = &f.ID
		return tx.Audit.CreateAuditLog(utils.NewAuditLog(
			actor,
			audit.ActionRegisterFarmer,
			audit.ResourceFarmer,
			f.Phone,
			nil,
			f,
			"farmer registered",
		))
	})
	if err != nil {
		return farmer.Farmer{}, err
	}

	metrics.FarmersRegistered.Inc()
	return f, nil
}

// Authenticate checks a phone/password pair and issues a session token.
func (s *FarmerService) Authenticate(input farmer.LoginInput) (farmer.Farmer, string, error) {
	f, err := s.Repos.Farmer.GetFarmerByPhone(input.Phone)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return farmer.Farmer{}, "", ErrInvalidCredentials
		}
		return farmer.Farmer{}, "", err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(f.Password), []byte(input.Password)); err != nil {
		return farmer.Farmer{}, "", ErrInvalidCredentials
	}

	token, err := middleware.GenerateToken(f.ID, f.Phone, f.Name, config.TokenTTL)
	if err != nil {
		return farmer.Farmer{}, "", err
	}
	return f, token, nil
}

func (s *FarmerService) GetFarmer(id uint) (farmer.Farmer, error) {
	f, err := s.Repos.Farmer.GetFarmerByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return farmer.Farmer{}, ErrFarmerNotFound
		}
		return farmer.Farmer{}, err
	}
	return f, nil
}
