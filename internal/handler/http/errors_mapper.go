package http

import (
	"errors"
	"net/http"

	"github.com/dicerhq/dicer-admin/internal/service"
	"github.com/dicerhq/dicer-admin/internal/store"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided: http.StatusBadRequest,
	service.ErrInvalidStatus:       http.StatusBadRequest,
	service.ErrInvalidBleID:        http.StatusBadRequest,

	service.ErrAdminInvalid:            http.StatusUnauthorized,
	service.ErrUserInvalid:             http.StatusUnauthorized,
	service.ErrUserNotFound:            http.StatusUnauthorized,
	service.ErrWrongPassword:           http.StatusUnauthorized,
	service.ErrDeviceNotRegistered:     http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrAccountInactive:         http.StatusForbidden,

	store.ErrPhoneAlreadyExists: http.StatusBadRequest,
	store.ErrDeviceAlreadyBound: http.StatusBadRequest,
	store.ErrBleAlreadyBound:    http.StatusBadRequest,

	store.ErrAccountNotFound: http.StatusNotFound,
	store.ErrDeviceNotFound:  http.StatusNotFound,
	store.ErrBleNotFound:     http.StatusNotFound,

	store.ErrStorageUnavailable: http.StatusServiceUnavailable,

	store.ErrBuildingSQLQuery: http.StatusInternalServerError,
	store.ErrExecutingQuery:   http.StatusInternalServerError,
	store.ErrScanningRow:      http.StatusInternalServerError,
	store.ErrScanningRows:     http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
