package accountRepository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/sirupsen/logrus"

	"NeuroScan/internal/api/account"
	"NeuroScan/internal/entity"
	contextPkg "NeuroScan/pkg/context"
)

type HospitalAccountDB struct {
	ID           sql.NullString `db:"id"`
	HospitalID   sql.NullString `db:"hospital_id"`
	Password     sql.NullString `db:"password"`
	HospitalName sql.NullString `db:"hospital_name"`
	PhoneNumber  sql.NullString `db:"phone_number"`
	CreatedAt    sql.NullTime   `db:"created_at"`
}

func (r *hospitalRepository) CreateAccount(c context.Context, acc entity.HospitalAccount) error {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"id":            acc.ID,
		"hospital_id":   acc.HospitalID,
		"password":      acc.Password,
		"hospital_name": acc.HospitalName,
		"phone_number":  acc.PhoneNumber,
		"created_at":    time.Now(),
	}

	query, args, err := sqlx.Named(queryCreateAccount, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to build SQL query for CreateAccount")
		return err
	}
	query = r.q.Rebind(query)

	_, err = r.q.ExecContext(c, query, args...)
	if err != nil {
		// The table carries a uniqueness constraint on hospital_id, so two
		// concurrent signups racing past the existence check still cannot
		// both insert.
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Warn("Hospital ID already registered")
			return account.ErrHospitalIDAlreadyRegistered
		}

		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when creating hospital account")

		return err
	}

	return nil
}

func (r *hospitalRepository) GetByHospitalID(c context.Context, hospitalID string) (entity.HospitalAccount, error) {
	requestID := contextPkg.GetRequestID(c)
	var acc HospitalAccountDB

	argsKV := map[string]interface{}{
		"hospital_id": hospitalID,
	}

	query, args, err := sqlx.Named(queryGetByHospitalID, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetByHospitalID named query preparation err")
		return entity.HospitalAccount{}, err
	}

	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(c, query, args...).StructScan(&acc); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entity.HospitalAccount{}, account.ErrAccountNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetByHospitalID execution err")
		return entity.HospitalAccount{}, err
	}

	return r.makeAccount(acc), nil
}

func (r *hospitalRepository) makeAccount(acc HospitalAccountDB) entity.HospitalAccount {
	return entity.HospitalAccount{
		ID:           acc.ID.String,
		HospitalID:   acc.HospitalID.String,
		Password:     acc.Password.String,
		HospitalName: acc.HospitalName.String,
		PhoneNumber:  acc.PhoneNumber.String,
		CreatedAt:    acc.CreatedAt.Time,
	}
}
