package accountService

import (
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"

	"NeuroScan/internal/api/account"
	accountRepository "NeuroScan/internal/api/account/repository"
	"NeuroScan/pkg/utils"
)

type AccountService interface {
	Login(c context.Context, req account.LoginRequest) error
	Register(c context.Context, req account.SignupRequest) error
}

type accountService struct {
	log               *logrus.Logger
	accountRepository accountRepository.Repository
	utils             utils.IUtils
}

func New(log *logrus.Logger, repo accountRepository.Repository, utils utils.IUtils) AccountService {
	return &accountService{
		log:               log,
		accountRepository: repo,
		utils:             utils,
	}
}
