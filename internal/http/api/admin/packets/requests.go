package packets

// IqamahRequest carries per-prayer offsets in minutes. Omitted prayers
// fall back to the default offset.
type IqamahRequest struct {
	Subuh   *int `json:"subuh"`
	Zohor   *int `json:"zohor"`
	Asar    *int `json:"asar"`
	Maghrib *int `json:"maghrib"`
	Isyak   *int `json:"isyak"`
}

type UpdatePrayerSettingsRequest struct {
	ZoneCode      string        `json:"zone_code" binding:"required"`
	IqamahEnabled bool          `json:"iqamah_enabled"`
	Iqamah        IqamahRequest `json:"iqamah"`
}
