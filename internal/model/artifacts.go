package model

// Artifact record shapes. These mirror the JSON files generated under the
// artifacts directory; the build only ever reads them, generation overwrites
// them wholesale.

// MediumPost is one entry of the medium posts artifact.
type MediumPost struct {
	Title   string  `json:"title"`
	Link    string  `json:"link"`
	Date    *string `json:"date"`
	Excerpt string  `json:"excerpt"`
}

// MediumArtifact is the medium_posts.json document.
type MediumArtifact struct {
	Source string       `json:"source"`
	Posts  []MediumPost `json:"posts"`
}

// Certificate is a single certificate document reference.
type Certificate struct {
	Title    string `json:"title"`
	Provider string `json:"provider"`
	File     string `json:"file"`
}

// CertificateCategory groups certificates under a display heading.
type CertificateCategory struct {
	Key          string        `json:"key"`
	DisplayName  string        `json:"display_name"`
	Icon         string        `json:"icon"`
	Color        string        `json:"color"`
	Count        int           `json:"count"`
	Certificates []Certificate `json:"certificates"`
}

// CertificatesArtifact is the certificates.json document. Categories keep
// their authored order.
type CertificatesArtifact struct {
	GeneratedAt string                `json:"generated_at"`
	TotalCount  int                   `json:"total_count"`
	Categories  []CertificateCategory `json:"categories"`
}

// BadgeCertification is one verifiable badge entry.
type BadgeCertification struct {
	Title           string `json:"title"`
	Provider        string `json:"provider"`
	Category        string `json:"category"`
	BadgeImage      string `json:"badge_image"`
	BadgePath       string `json:"badge_path"`
	VerificationURL string `json:"verification_url"`
	FallbackSVG     string `json:"fallback_svg"`
	IssueDate       string `json:"issue_date,omitempty"`
	ExpiryDate      string `json:"expiry_date,omitempty"`
	CredentialID    string `json:"credential_id,omitempty"`
	Description     string `json:"description,omitempty"`
}

// BadgeCategory carries display metadata plus the badges filed under it,
// sorted by issue date descending with undated entries last.
type BadgeCategory struct {
	Name           string               `json:"name"`
	DisplayName    string               `json:"display_name"`
	Icon           string               `json:"icon"`
	Color          string               `json:"color"`
	Description    string               `json:"description"`
	SortOrder      int                  `json:"sort_order"`
	Count          int                  `json:"count"`
	Certifications []BadgeCertification `json:"certifications"`
}

// BadgeArtifact is the badge_certifications.json document. Categories are
// ordered by SortOrder.
type BadgeArtifact struct {
	LastUpdated string          `json:"last_updated"`
	TotalCount  int             `json:"total_count"`
	Categories  []BadgeCategory `json:"categories"`
}
