package service

import (
	"errors"
	"fmt"

	"github.com/jinzhu/copier"
	"github.com/joseph-ezekiel/verboheit-mlc/internal/auth"
	"github.com/joseph-ezekiel/verboheit-mlc/internal/dto"
	"github.com/joseph-ezekiel/verboheit-mlc/internal/model"
	"github.com/joseph-ezekiel/verboheit-mlc/internal/repository"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AccountService covers registration, login and profile administration.
type AccountService interface {
	RegisterCandidate(req dto.CandidateRegisterDTO) (*dto.CandidateDTO, error)
	RegisterStaff(req dto.StaffRegisterDTO) (*dto.StaffDTO, error)
	Login(req dto.LoginDTO) (*auth.TokenPair, error)
	Refresh(refreshToken string) (*auth.TokenPair, error)

	GetCandidate(candidateID uint) (*dto.CandidateDTO, error)
	ListCandidates() ([]dto.CandidateDTO, error)
	AssignCandidateRole(candidateID uint, role string) (*dto.CandidateDTO, error)
	GetStaff(staffID uint) (*dto.StaffDTO, error)
	ListStaff() ([]dto.StaffDTO, error)
	AssignStaffRole(staffID uint, role string) (*dto.StaffDTO, error)
}

type accountService struct {
	userRepo      repository.UserRepository
	candidateRepo repository.CandidateRepository
	staffRepo     repository.StaffRepository
	tokens        auth.TokenService
	flags         FlagService
	db            *gorm.DB
}

func NewAccountService(userRepo repository.UserRepository, candidateRepo repository.CandidateRepository, staffRepo repository.StaffRepository, tokens auth.TokenService, flags FlagService, db *gorm.DB) AccountService {
	return &accountService{
		userRepo:      userRepo,
		candidateRepo: candidateRepo,
		staffRepo:     staffRepo,
		tokens:        tokens,
		flags:         flags,
		db:            db,
	}
}

func (s *accountService) RegisterCandidate(req dto.CandidateRegisterDTO) (*dto.CandidateDTO, error) {
	if !s.flags.GetBool(model.FlagCandidateRegistrationOpen, true) {
		return nil, ErrRegistrationClosed
	}

	var candidate model.Candidate
	err := s.db.Transaction(func(tx *gorm.DB) error {
		user, err := s.createUser(tx, req.Username, req.Email, req.FirstName, req.LastName, req.Password)
		if err != nil {
			return err
		}
		candidate = model.Candidate{
			UserID:   user.ID,
			Phone:    req.Phone,
			School:   req.School,
			Role:     model.CandidateRoleScreening,
			IsActive: true,
		}
		return tx.Create(&candidate).Error
	})
	if err != nil {
		return nil, err
	}

	log.Info().Str("username", req.Username).Uint("candidateID", candidate.ID).Msg("Candidate registered")
	return s.GetCandidate(candidate.ID)
}

func (s *accountService) RegisterStaff(req dto.StaffRegisterDTO) (*dto.StaffDTO, error) {
	if !s.flags.GetBool(model.FlagStaffRegistrationOpen, true) {
		return nil, ErrRegistrationClosed
	}

	var staff model.Staff
	err := s.db.Transaction(func(tx *gorm.DB) error {
		user, err := s.createUser(tx, req.Username, req.Email, req.FirstName, req.LastName, req.Password)
		if err != nil {
			return err
		}
		staff = model.Staff{
			UserID:     user.ID,
			Phone:      req.Phone,
			Occupation: req.Occupation,
			Role:       model.StaffRoleVolunteer,
			IsActive:   true,
		}
		return tx.Create(&staff).Error
	})
	if err != nil {
		return nil, err
	}

	log.Info().Str("username", req.Username).Uint("staffID", staff.ID).Msg("Staff registered")
	return s.GetStaff(staff.ID)
}

func (s *accountService) createUser(tx *gorm.DB, username, email, firstName, lastName, password string) (*model.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}
	user := model.User{
		Username:     username,
		Email:        email,
		FirstName:    firstName,
		LastName:     lastName,
		PasswordHash: string(hash),
		IsActive:     true,
	}
	if err := tx.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrUsernameTaken
		}
		return nil, fmt.Errorf("creating user: %w", err)
	}
	return &user, nil
}

func (s *accountService) Login(req dto.LoginDTO) (*auth.TokenPair, error) {
	user, err := s.userRepo.FindByUsername(req.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("loading user: %w", err)
	}
	if !user.IsActive {
		return nil, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		return nil, ErrInvalidCredentials
	}

	pair, err := s.tokens.IssuePair(user.ID)
	if err != nil {
		return nil, fmt.Errorf("issuing tokens: %w", err)
	}
	log.Info().Str("username", user.Username).Msg("User logged in")
	return pair, nil
}

func (s *accountService) Refresh(refreshToken string) (*auth.TokenPair, error) {
	pair, err := s.tokens.Refresh(refreshToken)
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	return pair, nil
}

func (s *accountService) GetCandidate(candidateID uint) (*dto.CandidateDTO, error) {
	candidate, err := s.candidateRepo.FindByID(candidateID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCandidateNotFound
		}
		return nil, fmt.Errorf("loading candidate %d: %w", candidateID, err)
	}
	return candidateToDTO(candidate)
}

func (s *accountService) ListCandidates() ([]dto.CandidateDTO, error) {
	candidates, err := s.candidateRepo.FindAll()
	if err != nil {
		return nil, fmt.Errorf("listing candidates: %w", err)
	}
	dtos := make([]dto.CandidateDTO, 0, len(candidates))
	for i := range candidates {
		d, err := candidateToDTO(&candidates[i])
		if err != nil {
			return nil, err
		}
		dtos = append(dtos, *d)
	}
	return dtos, nil
}

func (s *accountService) AssignCandidateRole(candidateID uint, role string) (*dto.CandidateDTO, error) {
	if !model.ValidCandidateRole(role) {
		return nil, ErrInvalidRole
	}
	candidate, err := s.candidateRepo.FindByID(candidateID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCandidateNotFound
		}
		return nil, fmt.Errorf("loading candidate %d: %w", candidateID, err)
	}
	candidate.Role = role
	if err := s.candidateRepo.Update(candidate); err != nil {
		return nil, fmt.Errorf("updating candidate %d: %w", candidateID, err)
	}
	log.Info().Uint("candidateID", candidateID).Str("role", role).Msg("Candidate role assigned")
	return candidateToDTO(candidate)
}

func (s *accountService) GetStaff(staffID uint) (*dto.StaffDTO, error) {
	staff, err := s.staffRepo.FindByID(staffID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStaffNotFound
		}
		return nil, fmt.Errorf("loading staff %d: %w", staffID, err)
	}
	return staffToDTO(staff)
}

func (s *accountService) ListStaff() ([]dto.StaffDTO, error) {
	staff, err := s.staffRepo.FindAll()
	if err != nil {
		return nil, fmt.Errorf("listing staff: %w", err)
	}
	dtos := make([]dto.StaffDTO, 0, len(staff))
	for i := range staff {
		d, err := staffToDTO(&staff[i])
		if err != nil {
			return nil, err
		}
		dtos = append(dtos, *d)
	}
	return dtos, nil
}

func (s *accountService) AssignStaffRole(staffID uint, role string) (*dto.StaffDTO, error) {
	if !model.ValidStaffRole(role) {
		return nil, ErrInvalidRole
	}
	staff, err := s.staffRepo.FindByID(staffID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStaffNotFound
		}
		return nil, fmt.Errorf("loading staff %d: %w", staffID, err)
	}
	staff.Role = role
	if err := s.staffRepo.Update(staff); err != nil {
		return nil, fmt.Errorf("updating staff %d: %w", staffID, err)
	}
	log.Info().Uint("staffID", staffID).Str("role", role).Msg("Staff role assigned")
	return staffToDTO(staff)
}

func candidateToDTO(candidate *model.Candidate) (*dto.CandidateDTO, error) {
	var d dto.CandidateDTO
	if err := copier.Copy(&d, candidate); err != nil {
		return nil, fmt.Errorf("preparing candidate response: %w", err)
	}
	d.Username = candidate.User.Username
	d.Email = candidate.User.Email
	d.FirstName = candidate.User.FirstName
	d.LastName = candidate.User.LastName
	return &d, nil
}

func staffToDTO(staff *model.Staff) (*dto.StaffDTO, error) {
	var d dto.StaffDTO
	if err := copier.Copy(&d, staff); err != nil {
		return nil, fmt.Errorf("preparing staff response: %w", err)
	}
	d.Username = staff.User.Username
	d.Email = staff.User.Email
	d.FirstName = staff.User.FirstName
	d.LastName = staff.User.LastName
	return &d, nil
}
