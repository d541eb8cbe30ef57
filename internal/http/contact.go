package httpapi

import (
	"encoding/json"
	"errors"
	"io"
	"mime"
	"net/http"

	"portfolio-backend-go/internal/services"
)

type ContactResponse struct {
	Message string `json:"message"`
}

var contactFields = []string{"full_name", "email", "message"}

// SubmitContact accepts JSON and HTML form submissions alike.
func (s *Server) SubmitContact(w http.ResponseWriter, r *http.Request) {
	input, typeErrs, ok := readContact(w, r)
	if !ok {
		return
	}
	if !typeErrs.Empty() {
		writeFailure(w, r, mergeContactErrors(input, typeErrs))
		return
	}
	if _, err := services.SubmitContact(r.Context(), s.DB, input); err != nil {
		writeFailure(w, r, err)
		return
	}
	WriteJSON(w, http.StatusCreated, ContactResponse{Message: services.ContactConfirmation})
}

// mergeContactErrors reports the remaining fields alongside the ones that were not strings.
func mergeContactErrors(input services.ContactInput, typeErrs services.ValidationError) services.ValidationError {
	merged := services.ValidationError{}
	if _, err := services.ValidateContact(input); err != nil {
		if verr, ok := err.(services.ValidationError); ok {
			merged = verr
		}
	}
	for field, messages := range typeErrs.Fields {
		delete(merged.Fields, field)
		for _, message := range messages {
			merged.Add(field, message)
		}
	}
	return merged
}

func readContact(w http.ResponseWriter, r *http.Request) (services.ContactInput, services.ValidationError, bool) {
	var typeErrs services.ValidationError
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	switch mediaType {
	case "application/x-www-form-urlencoded", "multipart/form-data":
		r.Body = http.MaxBytesReader(w, r.Body, maxJSONBody)
		if err := r.ParseMultipartForm(maxJSONBody); err != nil && err != http.ErrNotMultipart {
			WriteError(w, http.StatusBadRequest, "Invalid payload")
			return services.ContactInput{}, typeErrs, false
		}
		return services.ContactInput{
			FullName: formValue(r, "full_name"),
			Email:    formValue(r, "email"),
			Message:  formValue(r, "message"),
		}, typeErrs, true
	}

	// An empty body is an empty object, so every field is reported as required.
	raw := map[string]json.RawMessage{}
	err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxJSONBody)).Decode(&raw)
	if err != nil && !errors.Is(err, io.EOF) {
		WriteError(w, http.StatusBadRequest, "Invalid payload")
		return services.ContactInput{}, typeErrs, false
	}
	values := map[string]*string{}
	for _, field := range contactFields {
		value, present := raw[field]
		if !present {
			continue
		}
		if string(value) == "null" {
			typeErrs.Add(field, "This field may not be null.")
			continue
		}
		var text string
		if err := json.Unmarshal(value, &text); err != nil {
			typeErrs.Add(field, "Not a valid string.")
			continue
		}
		values[field] = &text
	}
	return services.ContactInput{
		FullName: values["full_name"],
		Email:    values["email"],
		Message:  values["message"],
	}, typeErrs, true
}

// formValue returns nil when the field was not submitted at all.
func formValue(r *http.Request, key string) *string {
	values, ok := r.PostForm[key]
	if !ok || len(values) == 0 {
		return nil
	}
	return &values[0]
}
