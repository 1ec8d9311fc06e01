package v1

import (
	"errors"

	"github.com/praneeth-grandhi/Hostel-Management/internal/core/credential"
	"github.com/praneeth-grandhi/Hostel-Management/internal/core/domain"
)

// checkRecord merges the record's own validation result with a check of the
// plaintext secret about to be hashed. When a new secret is supplied, the
// stored hash is not yet set and its "password" complaint is replaced by the
// secret's own check.
func checkRecord(recordErr error, secret *string) error {
	verr := &domain.ValidationError{}

	if recordErr != nil {
		var fields *domain.ValidationError
		if !errors.As(recordErr, &fields) {
			return recordErr
		}
		for name, reason := range fields.Fields {
			if name == "password" && secret != nil {
				continue
			}
			verr.Add(name, reason)
		}
	}

	if secret != nil {
		if err := credential.CheckSecret(*secret); err != nil {
			verr.Add("password", err.Error())
		}
	}

	return verr.OrNil()
}

// hashSecret returns the new stored hash, or current when no secret was supplied.
func hashSecret(hasher credential.Hasher, current string, secret *string) (string, error) {
	if secret == nil {
		return current, nil
	}
	hash, err := hasher.Hash(*secret)
	if err != nil {
		if credential.IsInputError(err) {
			return "", domain.NewValidationError("password", err.Error())
		}
		return "", err
	}
	return hash, nil
}
