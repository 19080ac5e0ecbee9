package format

import (
	"strconv"
	"strings"

	"github.com/billboardhub/bbadmin/internal/models"
	"github.com/billboardhub/bbadmin/internal/utils"
)

// identity numbers keep their last four digits visible
const maskKeep = 4

func optional(s *string) string {
	return utils.Deref(s)
}

func score(f *float64) string {
	if f == nil {
		return ""
	}
	return strconv.FormatFloat(*f, 'f', 2, 64)
}

// UserColumns is the users grid
var UserColumns = []Column[models.User]{
	{"ID", func(u models.User) string { return u.ID }},
	{"Username", func(u models.User) string { return u.Username }},
	{"Email", func(u models.User) string { return u.Email }},
	{"Phone", func(u models.User) string { return optional(u.Phone) }},
	{"Level", func(u models.User) string { return string(u.Level) }},
	{"Merchant", func(u models.User) string {
		if u.Merchant == nil {
			return ""
		}
		return u.Merchant.CompanyName
	}},
	{"Created", func(u models.User) string { return utils.FormatDateTime(u.CreatedAt) }},
}

// SellerColumns is the sellers grid; identity numbers are masked
var SellerColumns = []Column[models.Seller]{
	{"ID", func(s models.Seller) string { return s.ID }},
	{"Full Name", func(s models.Seller) string { return s.Fullname }},
	{"Company", func(s models.Seller) string { return s.CompanyName }},
	{"KTP", func(s models.Seller) string { return utils.MaskNumber(s.KTP, maskKeep) }},
	{"NPWP", func(s models.Seller) string { return utils.MaskNumber(s.NPWP, maskKeep) }},
	{"Office Address", func(s models.Seller) string { return s.OfficeAddress }},
	{"Created", func(s models.Seller) string { return utils.FormatDateTime(s.CreatedAt) }},
}

// MerchantColumns is the merchants grid
var MerchantColumns = []Column[models.Merchant]{
	{"ID", func(m models.Merchant) string { return m.ID }},
	{"Company", func(m models.Merchant) string { return m.CompanyName }},
	{"Full Name", func(m models.Merchant) string { return m.Fullname }},
	{"User", func(m models.Merchant) string {
		if m.User == nil {
			return ""
		}
		return m.User.Email
	}},
	{"Billboards", func(m models.Merchant) string {
		if m.Billboards == nil {
			return ""
		}
		return strconv.Itoa(len(m.Billboards))
	}},
	{"Created", func(m models.Merchant) string { return utils.FormatDateTime(m.CreatedAt) }},
}

// CategoryColumns is the categories grid
var CategoryColumns = []Column[models.Category]{
	{"ID", func(c models.Category) string { return c.ID }},
	{"Name", func(c models.Category) string { return c.Name }},
	{"Created", func(c models.Category) string { return utils.FormatDateTime(c.CreatedAt) }},
	{"Updated", func(c models.Category) string { return utils.FormatDateTime(c.UpdatedAt) }},
}

// DesignColumns is the designs grid
var DesignColumns = []Column[models.Design]{
	{"ID", func(d models.Design) string { return d.ID }},
	{"Name", func(d models.Design) string { return d.Name }},
	{"Price", func(d models.Design) string { return utils.FormatNullIDR(d.Price) }},
	{"Images", func(d models.Design) string { return strconv.Itoa(len(d.Image)) }},
	{"Created", func(d models.Design) string { return utils.FormatDateTime(d.CreatedAt) }},
}

// BillboardColumns is the billboards grid
var BillboardColumns = []Column[models.Billboard]{
	{"ID", func(b models.Billboard) string { return b.ID }},
	{"Location", func(b models.Billboard) string { return b.Location }},
	{"City", func(b models.Billboard) string { return b.CityLabel() }},
	{"Category", func(b models.Billboard) string { return b.CategoryLabel() }},
	{"Status", func(b models.Billboard) string { return b.Status }},
	{"Mode", func(b models.Billboard) string { return b.Mode }},
	{"Rent", func(b models.Billboard) string { return utils.FormatNullIDR(b.RentPrice) }},
	{"Sell", func(b models.Billboard) string { return utils.FormatNullIDR(b.SellPrice) }},
	{"Views", func(b models.Billboard) string { return strconv.Itoa(b.View) }},
	{"Created", func(b models.Billboard) string { return utils.FormatDateTime(b.CreatedAt) }},
}

// RecommendationColumns is the recommendations diagnostics grid
var RecommendationColumns = []Column[models.Billboard]{
	{"ID", func(b models.Billboard) string { return b.ID }},
	{"Location", func(b models.Billboard) string { return b.Location }},
	{"City", func(b models.Billboard) string { return b.CityLabel() }},
	{"Province", func(b models.Billboard) string { return b.ProvinceLabel() }},
	{"Category", func(b models.Billboard) string { return b.CategoryLabel() }},
	{"Status", func(b models.Billboard) string { return b.Status }},
	{"Mode", func(b models.Billboard) string { return b.Mode }},
	{"Rent", func(b models.Billboard) string { return utils.FormatNullIDR(b.RentPrice) }},
	{"Sell", func(b models.Billboard) string { return utils.FormatNullIDR(b.SellPrice) }},
	{"Service", func(b models.Billboard) string { return utils.FormatNullIDR(b.ServicePrice) }},
	{"Views", func(b models.Billboard) string { return strconv.Itoa(b.View) }},
	{"Score", func(b models.Billboard) string { return score(b.Score) }},
	{"Scored", func(b models.Billboard) string { return utils.FormatDateTimePtr(b.ScoreAt) }},
}

// TransactionColumns is the transactions grid
var TransactionColumns = []Column[models.Transaction]{
	{"ID", func(t models.Transaction) string { return t.ID }},
	{"Buyer", func(t models.Transaction) string { return t.BuyerLabel() }},
	{"Merchant", func(t models.Transaction) string { return t.MerchantLabel() }},
	{"Billboard", func(t models.Transaction) string { return t.BillboardLabel() }},
	{"Design", func(t models.Transaction) string { return t.DesignLabel() }},
	{"Status", func(t models.Transaction) string { return string(t.Status) }},
	{"Total", func(t models.Transaction) string { return utils.FormatNullIDR(t.TotalPrice) }},
	{"Start", func(t models.Transaction) string { return utils.FormatDateTime(t.StartDate) }},
	{"End", func(t models.Transaction) string { return utils.FormatDateTimePtr(t.EndDate) }},
}

// ImageColumns lists uploaded pictures; base resolves relative paths
func ImageColumns(base string) []Column[models.Image] {
	return []Column[models.Image]{
		{"ID", func(i models.Image) string { return i.ID }},
		{"URL", func(i models.Image) string { return utils.ResolveImageURL(base, i.URL) }},
		{"Type", func(i models.Image) string { return i.Type }},
	}
}

// BillboardSummaryColumns lists the billboards under a seller
var BillboardSummaryColumns = []Column[models.BillboardSummary]{
	{"ID", func(b models.BillboardSummary) string { return b.ID }},
	{"Location", func(b models.BillboardSummary) string { return optional(b.Location) }},
	{"Size", func(b models.BillboardSummary) string { return optional(b.Size) }},
	{"Created", func(b models.BillboardSummary) string { return utils.FormatDateTime(b.CreatedAt) }},
}

// UserDetail renders one account
func UserDetail(u models.User) *Detail {
	d := NewDetail(u,
		Field{"ID", u.ID},
		Field{"Username", u.Username},
		Field{"Email", u.Email},
		Field{"Phone", optional(u.Phone)},
		Field{"Level", string(u.Level)},
		Field{"Provider", u.Provider},
		Field{"Created", utils.FormatDateTime(u.CreatedAt)},
		Field{"Updated", utils.FormatDateTime(u.UpdatedAt)},
	)
	if u.Merchant != nil {
		d.Fields = append(d.Fields,
			Field{"Merchant", u.Merchant.CompanyName},
			Field{"Merchant Owner", u.Merchant.Fullname},
		)
	}
	return d
}

// SellerDetailView renders a seller with its account and billboards
func SellerDetailView(s models.SellerDetail) *Detail {
	d := NewDetail(s,
		Field{"ID", s.ID},
		Field{"Full Name", s.Fullname},
		Field{"Company", s.CompanyName},
		Field{"KTP", utils.MaskNumber(s.KTP, maskKeep)},
		Field{"NPWP", utils.MaskNumber(s.NPWP, maskKeep)},
		Field{"KTP Address", s.KTPAddress},
		Field{"Office Address", s.OfficeAddress},
		Field{"Created", utils.FormatDateTime(s.CreatedAt)},
	)
	if s.User != nil {
		d.Fields = append(d.Fields,
			Field{"Username", s.User.Username},
			Field{"Email", s.User.Email},
			Field{"Phone", optional(s.User.Phone)},
		)
	}
	return d.Section("Billboards", NewTable(s.Billboards, BillboardSummaryColumns))
}

// MerchantDetailView renders a merchant with its joins
func MerchantDetailView(m models.Merchant) *Detail {
	return SellerDetailView(models.SellerDetail{Seller: m.Seller, User: m.User, Billboards: m.Billboards}).withSource(m)
}

// CategoryDetail renders one category
func CategoryDetail(c models.Category) *Detail {
	return NewDetail(c,
		Field{"ID", c.ID},
		Field{"Name", c.Name},
		Field{"Created", utils.FormatDateTime(c.CreatedAt)},
		Field{"Updated", utils.FormatDateTime(c.UpdatedAt)},
	)
}

// DesignDetail renders a design and its images
func DesignDetail(d models.Design, imageBase string) *Detail {
	return NewDetail(d,
		Field{"ID", d.ID},
		Field{"Name", d.Name},
		Field{"Description", d.Description},
		Field{"Price", utils.FormatNullIDR(d.Price)},
		Field{"Created", utils.FormatDateTime(d.CreatedAt)},
	).Section("Images", NewTable(d.Image, ImageColumns(imageBase)))
}

// BillboardDetailView renders a billboard with its images and transactions
func BillboardDetailView(b models.BillboardDetail, imageBase string) *Detail {
	rating := ""
	if b.AverageRating != nil {
		rating = strconv.FormatFloat(*b.AverageRating, 'f', 1, 64)
	}
	owner := ""
	if b.Owner != nil {
		owner = b.Owner.CompanyName
		if b.Owner.Fullname != "" {
			owner = strings.TrimSpace(owner + " (" + b.Owner.Fullname + ")")
		}
	}
	d := NewDetail(b,
		Field{"ID", b.ID},
		Field{"Location", b.Location},
		Field{"Description", b.Description},
		Field{"City", b.CityLabel()},
		Field{"Province", b.ProvinceLabel()},
		Field{"Category", b.CategoryLabel()},
		Field{"Owner", owner},
		Field{"Status", b.Status},
		Field{"Mode", b.Mode},
		Field{"Size", b.Size},
		Field{"Orientation", b.Orientation},
		Field{"Display", b.Display},
		Field{"Lighting", b.Lighting},
		Field{"Tax", b.Tax},
		Field{"Land Ownership", b.LandOwnership},
		Field{"Rent Price", utils.FormatNullIDR(b.RentPrice)},
		Field{"Sell Price", utils.FormatNullIDR(b.SellPrice)},
		Field{"Service Price", utils.FormatNullIDR(b.ServicePrice)},
		Field{"Views", strconv.Itoa(b.View)},
		Field{"Average Rating", rating},
		Field{"Created", utils.FormatDateTime(b.CreatedAt)},
	)
	if b.IsDeleted {
		d.Fields = append(d.Fields, Field{"Deleted", utils.FormatDateTimePtr(b.DeletedAt)})
	}
	d.Section("Images", NewTable(b.Image, ImageColumns(imageBase)))
	return d.Section("Transactions", NewTable(b.Transaction, TransactionColumns))
}

// TransactionDetail renders one order
func TransactionDetail(t models.Transaction) *Detail {
	return NewDetail(t,
		Field{"ID", t.ID},
		Field{"Status", string(t.Status)},
		Field{"Buyer", t.BuyerLabel()},
		Field{"Merchant", t.MerchantLabel()},
		Field{"Billboard", t.BillboardLabel()},
		Field{"Design", t.DesignLabel()},
		Field{"Payment", optional(t.Payment)},
		Field{"Total", utils.FormatNullIDR(t.TotalPrice)},
		Field{"Start", utils.FormatDateTime(t.StartDate)},
		Field{"End", utils.FormatDateTimePtr(t.EndDate)},
		Field{"Created", utils.FormatDateTime(t.CreatedAt)},
	)
}

// ProfileDetail renders the signed-in account
func ProfileDetail(p models.Profile) *Detail {
	return NewDetail(p,
		Field{"ID", p.ID},
		Field{"Username", p.Username},
		Field{"Email", p.Email},
		Field{"Phone", p.Phone},
		Field{"Level", string(p.Level)},
	)
}

func (d *Detail) withSource(src interface{}) *Detail {
	d.source = src
	return d
}
