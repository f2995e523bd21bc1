package view

import (
	"fmt"
	"strconv"

	"github.com/meur/ffscope/internal/catalog"
	"github.com/meur/ffscope/internal/profile"
)

// PlaceholderImageURL is the graphic shown when an icon fails to load in the
// browser.
const PlaceholderImageURL = "https://placehold.co/80x80/333333/FFFFFF?text=No+Image"

// iconEndpoint is the relay path the page fetches icons through.
const iconEndpoint = "/api/ff/images"

// Image is one renderable icon with its load-failure fallback. The template
// emits the fallback as an onerror swap; ApplyLoadFailure models the same
// transition for server-side use.
type Image struct {
	Src         string
	Alt         string
	FallbackSrc string
	FallbackAlt string
}

// ApplyLoadFailure swaps the image to its placeholder form, mirroring what
// the browser does when the real icon fails to load.
func (img *Image) ApplyLoadFailure() {
	img.Src = img.FallbackSrc
	img.Alt = img.FallbackAlt
}

// Field is a single labelled line on a card.
type Field struct {
	Label string
	Value string
}

// Tile pairs an item image with its display name.
type Tile struct {
	Image Image
	Name  string
}

// Card is one independently-optional section of the profile page.
type Card struct {
	Title       string
	HeaderTiles []Tile // avatar/banner row, account card only
	Fields      []Field
	Tiles       []Tile // item image grid
	Wide        bool
}

// newImage builds an icon image for a raw item reference, resolving it
// against the catalog and wiring the placeholder fallback.
func newImage(cat *catalog.Catalog, rawID, alt string) Image {
	return Image{
		Src:         iconEndpoint + "?iconName=" + cat.IconFileName(rawID),
		Alt:         alt,
		FallbackSrc: PlaceholderImageURL,
		FallbackAlt: fmt.Sprintf("Image not found for %s (ID: %s)", alt, rawID),
	}
}

// newTile builds an image+name tile for an item identifier.
func newTile(cat *catalog.Catalog, itemID int64, altPrefix string) Tile {
	raw := strconv.FormatInt(itemID, 10)
	name := cat.ItemName(raw)
	return Tile{
		Image: newImage(cat, raw, altPrefix+": "+name),
		Name:  name,
	}
}

// BuildCards turns a player document into the card sequence to render. Each
// sub-section contributes a card only when present; an absent section is not
// an error, it is simply omitted.
func BuildCards(doc *profile.Document, cat *catalog.Catalog) []Card {
	var cards []Card

	if acc := doc.AccountInfo; acc != nil {
		cards = append(cards, Card{
			Title: "Account Information",
			Wide:  true,
			HeaderTiles: []Tile{
				newTile(cat, acc.AccountAvatarID, "Account Avatar"),
				newTile(cat, acc.AccountBannerID, "Account Banner"),
			},
			Fields: []Field{
				{"Name", acc.AccountName},
				{"Level", strconv.Itoa(acc.AccountLevel)},
				{"Region", acc.AccountRegion},
				{"Likes", strconv.FormatInt(acc.AccountLikes, 10)},
				{"Last Login", profile.FormatTimestamp(acc.AccountLastLogin)},
				{"Created At", profile.FormatTimestamp(acc.AccountCreateTime)},
				{"Release Version", acc.ReleaseVersion},
				{"BR Max Rank", fmt.Sprintf("%d (Points: %d)", acc.BrMaxRank, acc.BrRankPoint)},
				{"CS Max Rank", fmt.Sprintf("%d (Points: %d)", acc.CsMaxRank, acc.CsRankPoint)},
			},
		})
	}

	if g := doc.GuildInfo; g != nil && g.GuildName != "" {
		cards = append(cards, Card{
			Title: "Guild Information",
			Fields: []Field{
				{"Name", g.GuildName},
				{"ID", strconv.FormatInt(g.GuildID, 10)},
				{"Level", strconv.Itoa(g.GuildLevel)},
				{"Members", fmt.Sprintf("%d/%d", g.GuildMember, g.GuildCapacity)},
				{"Owner UID", strconv.FormatInt(g.GuildOwner, 10)},
			},
		})
	}

	if p := doc.AccountProfileInfo; p != nil && len(p.EquippedOutfit) > 0 {
		card := Card{Title: "Equipped Outfit"}
		for _, id := range p.EquippedOutfit {
			card.Tiles = append(card.Tiles, newTile(cat, id, "Outfit Item"))
		}
		cards = append(cards, card)
	}

	if weapons := doc.MergedWeapons(); len(weapons) > 0 {
		card := Card{Title: "Equipped Weapons"}
		for _, id := range weapons {
			card.Tiles = append(card.Tiles, newTile(cat, id, "Weapon Skin"))
		}
		cards = append(cards, card)
	}

	if so := doc.SocialInfo; so != nil {
		cards = append(cards, Card{
			Title: "Social Information",
			Fields: []Field{
				{"Language", so.AccountLanguage},
				{"Preferred Mode", so.AccountPreferMode},
				{"Signature", so.AccountSignature},
			},
		})
	}

	if cs := doc.CreditScoreInfo; cs != nil {
		cards = append(cards, Card{
			Title: "Credit Score",
			Fields: []Field{
				{"Score", strconv.Itoa(cs.CreditScore)},
				{"Summary Start", profile.FormatTimestamp(cs.PeriodicSummaryStartTime)},
				{"Summary End", profile.FormatTimestamp(cs.PeriodicSummaryEndTime)},
			},
		})
	}

	if pet := doc.PetInfo; pet != nil {
		id := strconv.FormatInt(pet.ID, 10)
		if pet.IsSelected {
			id += " (Selected)"
		}
		cards = append(cards, Card{
			Title: "Pet Information",
			Fields: []Field{
				{"ID", id},
				{"Level", strconv.Itoa(pet.Level)},
				{"EXP", strconv.FormatInt(pet.Exp, 10)},
				{"Skill ID", strconv.FormatInt(pet.SelectedSkillID, 10)},
				{"Skin ID", strconv.FormatInt(pet.SkinID, 10)},
			},
			Tiles: []Tile{newTile(cat, pet.SkinID, "Pet Skin")},
		})
	}

	return cards
}
