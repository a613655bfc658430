package models

import (
	"fmt"
	"strings"
)

// UpdateRowRequest is the body of POST /api/update. The row ID is loosely
// typed because the sheet itself mixes numeric and string IDs and the
// client forwards whatever it read.
type UpdateRowRequest struct {
	RowID  interface{}   `json:"rowId" binding:"required"`
	Sheet  string        `json:"sheet"`
	Values []interface{} `json:"values" binding:"required"`
}

// RowIDString renders the loosely-typed ID the way it appears in a cell.
func (r *UpdateRowRequest) RowIDString() string {
	return cellString(r.RowID)
}

// ValueStrings renders the full replacement row as cell values.
func (r *UpdateRowRequest) ValueStrings() []string {
	values := make([]string, len(r.Values))
	for i, v := range r.Values {
		values[i] = cellString(v)
	}
	return values
}

// SavePermissionsRequest is the body of POST /api/permissions.
type SavePermissionsRequest struct {
	Email         string        `json:"email"`
	AllowedIDs    []interface{} `json:"allowedIds"`
	AssignedSheet string        `json:"assignedSheet"`
}

// IDStrings normalizes the allow-list to trimmed non-empty strings.
func (r *SavePermissionsRequest) IDStrings() []string {
	ids := make([]string, 0, len(r.AllowedIDs))
	for _, v := range r.AllowedIDs {
		if s := strings.TrimSpace(cellString(v)); s != "" {
			ids = append(ids, s)
		}
	}
	return ids
}

// GPSFixRequest is the body of POST /api/log-gps.
type GPSFixRequest struct {
	Latitude  float64 `json:"latitude" binding:"required"`
	Longitude float64 `json:"longitude" binding:"required"`
	UserAgent string  `json:"userAgent"`
	IsMobile  bool    `json:"isMobile"`
	Reason    string  `json:"reason"`
}

// SheetIDsRequest is the body of POST /api/sheets.
type SheetIDsRequest struct {
	SheetName string `json:"sheetName" binding:"required"`
}

// CreatePDVRequest is the body of POST /api/alta-pdv.
type CreatePDVRequest struct {
	PDVData *PDVInput `json:"pdvData" binding:"required"`
}

// UploadRequest is the body of POST /api/upload.
type UploadRequest struct {
	ImageURL string `json:"imageUrl" binding:"required"`
}

// cellString renders any JSON value the way it would appear in a cell.
// Integral floats print without a decimal part, matching how row IDs come
// back out of the JSON decoder.
func cellString(v interface{}) string {
	if v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}
