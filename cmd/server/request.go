package main

import (
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"

	"github.com/worldmbti/insights/consts"
)

type malformedRequest struct {
	status int
	msg    string
}

func (mr *malformedRequest) Error() string {
	return mr.msg
}

// readUpload returns the "file" part of a multipart upload, limited to
// consts.MaxUploadSize bytes. The caller must close the file.
func readUpload(w http.ResponseWriter, r *http.Request) (multipart.File, *multipart.FileHeader, error) {
	r.Body = http.MaxBytesReader(w, r.Body, consts.MaxUploadSize)
	if err := r.ParseMultipartForm(consts.MaxUploadSize); err != nil {
		var maxBytesError *http.MaxBytesError
		switch {
		case errors.As(err, &maxBytesError):
			msg := fmt.Sprintf("Upload must not be larger than %d bytes", consts.MaxUploadSize)
			return nil, nil, &malformedRequest{status: http.StatusRequestEntityTooLarge, msg: msg}
		default:
			return nil, nil, &malformedRequest{status: http.StatusBadRequest, msg: "Request must be a multipart form upload"}
		}
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil, nil, &malformedRequest{status: http.StatusBadRequest, msg: "Request must include a file"}
		}
		return nil, nil, err
	}
	return file, header, nil
}
