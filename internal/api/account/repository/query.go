package accountRepository

const (
	queryCreateAccount = `
INSERT INTO hospital_accounts (id, hospital_id, password, hospital_name, phone_number, created_at)
VALUES (:id, :hospital_id, :password, :hospital_name, :phone_number, :created_at)`

	queryGetByHospitalID = `
SELECT id, hospital_id, password, hospital_name, phone_number, created_at
FROM hospital_accounts
    WHERE hospital_id = :hospital_id`
)
