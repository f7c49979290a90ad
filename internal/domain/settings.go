package domain

type StoreSettings struct {
	StoreName         string `json:"store_name"`
	OwnerEmail        string `json:"owner_email"`
	GoogleSheetURL    string `json:"google_sheet_url"`
	GoogleScriptURL   string `json:"google_script_url"`
	LineToken         string `json:"line_token"`
	EnableEmailNotify bool   `json:"enable_email_notify"`
	EnableSheetSync   bool   `json:"enable_sheet_sync"`
	EnableLineNotify  bool   `json:"enable_line_notify"`
	Username          string `json:"username"`
	Password          string `json:"password,omitempty"`
}

func DefaultSettings() StoreSettings {
	return StoreSettings{
		StoreName: "NoodleGenius 麵館",
		Username:  "Store",
		Password:  "12345678",
	}
}
