package models

// ErrorResponse โครงสร้างมาตรฐานสำหรับการส่ง Error
// Only the stable flag and a short description ever reach the caller.
type ErrorResponse struct {
	Success bool   `json:"success"` // always false
	Error   string `json:"error"`   // short error description
}

// SubmitFormResponse คือ response เมื่อส่งฟอร์มสำเร็จ
type SubmitFormResponse struct {
	Success    bool   `json:"success"`
	FormNumber string `json:"formNumber"`
	ID         string `json:"id"`
}
