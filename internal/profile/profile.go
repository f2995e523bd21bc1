package profile

import (
	"encoding/json"
	"fmt"
	"time"
)

// Document is the player profile aggregate returned by the player-info API.
// Every sub-section is independently optional; a nil pointer means the
// upstream omitted it and the section is simply not rendered.
type Document struct {
	Error              string              `json:"error,omitempty"`
	AccountInfo        *AccountInfo        `json:"AccountInfo,omitempty"`
	AccountProfileInfo *AccountProfileInfo `json:"AccountProfileInfo,omitempty"`
	CaptainBasicInfo   *CaptainBasicInfo   `json:"captainBasicInfo,omitempty"`
	GuildInfo          *GuildInfo          `json:"GuildInfo,omitempty"`
	SocialInfo         *SocialInfo         `json:"socialinfo,omitempty"`
	CreditScoreInfo    *CreditScoreInfo    `json:"creditScoreInfo,omitempty"`
	PetInfo            *PetInfo            `json:"petInfo,omitempty"`
}

// AccountInfo carries the core account section, including one of the two
// possible equipped-weapon lists.
type AccountInfo struct {
	AccountName       string  `json:"AccountName"`
	AccountLevel      int     `json:"AccountLevel"`
	AccountRegion     string  `json:"AccountRegion"`
	AccountLikes      int64   `json:"AccountLikes"`
	AccountLastLogin  int64   `json:"AccountLastLogin"`
	AccountCreateTime int64   `json:"AccountCreateTime"`
	ReleaseVersion    string  `json:"ReleaseVersion"`
	BrMaxRank         int     `json:"BrMaxRank"`
	BrRankPoint       int     `json:"BrRankPoint"`
	CsMaxRank         int     `json:"CsMaxRank"`
	CsRankPoint       int     `json:"CsRankPoint"`
	AccountAvatarID   int64   `json:"AccountAvatarId"`
	AccountBannerID   int64   `json:"AccountBannerId"`
	EquippedWeapon    []int64 `json:"EquippedWeapon"`
}

// AccountProfileInfo holds the equipped outfit list.
type AccountProfileInfo struct {
	EquippedOutfit []int64 `json:"EquippedOutfit"`
}

// CaptainBasicInfo is the second possible source of equipped weapons.
type CaptainBasicInfo struct {
	EquippedWeapon []int64 `json:"EquippedWeapon"`
}

// GuildInfo describes the player's guild, if any.
type GuildInfo struct {
	GuildName     string `json:"GuildName"`
	GuildID       int64  `json:"GuildID"`
	GuildLevel    int    `json:"GuildLevel"`
	GuildMember   int    `json:"GuildMember"`
	GuildCapacity int    `json:"GuildCapacity"`
	GuildOwner    int64  `json:"GuildOwner"`
}

// SocialInfo carries the social preferences section.
type SocialInfo struct {
	AccountLanguage   string `json:"AccountLanguage"`
	AccountPreferMode string `json:"AccountPreferMode"`
	AccountSignature  string `json:"AccountSignature"`
}

// CreditScoreInfo carries the credit score section.
type CreditScoreInfo struct {
	CreditScore              int   `json:"creditScore"`
	PeriodicSummaryStartTime int64 `json:"periodicSummaryStartTime"`
	PeriodicSummaryEndTime   int64 `json:"periodicSummaryEndTime"`
}

// PetInfo carries the pet section.
type PetInfo struct {
	ID              int64 `json:"id"`
	IsSelected      bool  `json:"isSelected"`
	Level           int   `json:"level"`
	Exp             int64 `json:"exp"`
	SelectedSkillID int64 `json:"selectedSkillId"`
	SkinID          int64 `json:"skinId"`
}

// Decode parses a player document from raw JSON.
func Decode(data []byte) (*Document, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode player document: %w", err)
	}
	return &doc, nil
}

// MergedWeapons concatenates the two possible equipped-weapon lists and
// deduplicates by value, preserving first-occurrence order. Weapon entries
// are bare numeric identifiers; there is nothing else to compare.
func (d *Document) MergedWeapons() []int64 {
	var all []int64
	if d.AccountInfo != nil {
		all = append(all, d.AccountInfo.EquippedWeapon...)
	}
	if d.CaptainBasicInfo != nil {
		all = append(all, d.CaptainBasicInfo.EquippedWeapon...)
	}

	seen := make(map[int64]bool, len(all))
	unique := all[:0]
	for _, w := range all {
		if !seen[w] {
			seen[w] = true
			unique = append(unique, w)
		}
	}
	return unique
}

// istZone is the fixed UTC+5:30 offset the original UI displays timestamps
// in. Fixed offset on purpose, not a tz-database zone.
var istZone = time.FixedZone("IST", 5*3600+30*60)

// FormatTimestamp renders epoch seconds as DD/MM/YYYY h:mm AM/PM at UTC+5:30.
// Day, month and minute are zero-padded; the 12-hour hour is not.
func FormatTimestamp(epochSeconds int64) string {
	return time.Unix(epochSeconds, 0).In(istZone).Format("02/01/2006 3:04 PM")
}
