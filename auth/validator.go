package auth

import (
	"encoding/json"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// CredentialFile is the document stored in the per-user credential file.
type CredentialFile struct {
	Token string `json:"TOKEN" validate:"required"`
}

func ParseCredentialFile(data []byte) (CredentialFile, error) {
	var file CredentialFile
	if err := json.Unmarshal(data, &file); err != nil {
		return CredentialFile{}, err
	}
	if err := validate.Struct(file); err != nil {
		return CredentialFile{}, err
	}
	return file, nil
}
