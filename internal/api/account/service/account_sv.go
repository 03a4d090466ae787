package accountService

import (
	"errors"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"

	"NeuroScan/internal/api/account"
	"NeuroScan/internal/entity"
	contextPkg "NeuroScan/pkg/context"
)

// Login succeeds only when the account exists and the stored password equals
// the supplied one. Passwords are compared as plain strings; the upstream
// system stores them unhashed and changing that would break existing records.
func (s *accountService) Login(ctx context.Context, req account.LoginRequest) error {
	requestID := contextPkg.GetRequestID(ctx)
	repo, err := s.accountRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return err
	}

	acc, err := repo.Accounts.GetByHospitalID(ctx, req.HospitalID)
	if err != nil {
		if errors.Is(err, account.ErrAccountNotFound) {
			s.log.WithFields(logrus.Fields{
				"request_id":  requestID,
				"hospital_id": req.HospitalID,
			}).Warn("Login attempt for unknown hospital id")

			// Same response as a wrong password.
			return account.ErrInvalidCredentials
		}

		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to get account by hospital id")
		return err
	}

	if acc.Password != req.Password {
		s.log.WithFields(logrus.Fields{
			"request_id":  requestID,
			"hospital_id": req.HospitalID,
		}).Warn("Login attempt with wrong password")
		return account.ErrInvalidCredentials
	}

	return nil
}

func (s *accountService) Register(ctx context.Context, req account.SignupRequest) error {
	requestID := contextPkg.GetRequestID(ctx)
	repo, err := s.accountRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return err
	}

	_, err = repo.Accounts.GetByHospitalID(ctx, req.HospitalID)
	if err == nil {
		s.log.WithFields(logrus.Fields{
			"request_id":  requestID,
			"hospital_id": req.HospitalID,
		}).Warn("Signup attempt for already registered hospital id")
		return account.ErrHospitalIDAlreadyRegistered
	}
	if !errors.Is(err, account.ErrAccountNotFound) {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to check existing hospital id")
		return err
	}

	id, err := s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to generate ULID")
		return err
	}

	acc := entity.HospitalAccount{
		ID:           id,
		HospitalID:   req.HospitalID,
		Password:     req.Password,
		HospitalName: req.HospitalName,
		PhoneNumber:  req.PhoneNumber,
	}

	if err := repo.Accounts.CreateAccount(ctx, acc); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create hospital account")
		return err
	}

	return nil
}
