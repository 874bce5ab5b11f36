package models

import "time"

// Receipt is one entry of a guide's upload log. The guide's ReceiptPath always
// names the most recent upload.
type Receipt struct {
	ID              uint           `json:"id" gorm:"primaryKey"`
	DeliveryGuideID uint           `json:"delivery_guide_id" gorm:"not null;index:idx_receipts_delivery_guide"`
	DeliveryGuide   *DeliveryGuide `json:"-" gorm:"foreignKey:DeliveryGuideID;constraint:OnDelete:CASCADE"`
	FileName        string         `json:"file_name" gorm:"size:255;not null"`
	FilePath        string         `json:"file_path" gorm:"size:500;not null"`
	FileType        *string        `json:"file_type" gorm:"size:50"`
	FileSize        *int64         `json:"file_size"`
	UploadedAt      time.Time      `json:"uploaded_at" gorm:"autoCreateTime"`
}
