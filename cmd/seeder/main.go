package main

import (
	"log"
	"os"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/vibetechlabs-developer/News-Portal-1/internal/config"
	"github.com/vibetechlabs-developer/News-Portal-1/internal/database"
	"github.com/vibetechlabs-developer/News-Portal-1/internal/models"
	"github.com/vibetechlabs-developer/News-Portal-1/internal/policy"
	"github.com/vibetechlabs-developer/News-Portal-1/internal/workflow"
)

// Seeds the super admin, the default navbar sections with the Gujarat
// region tree, and the site settings row. Idempotent: existing rows are
// left alone, so it is safe to re-run on a live database.
func main() {
	config.LoadConfig()
	database.Connect()

	log.Println("🔄 Running migrations (just in case)...")
	database.DB.AutoMigrate(
		&models.User{},
		&models.Section{},
		&models.Category{},
		&models.Tag{},
		&models.District{},
		&models.SiteSettings{},
	)

	admin := seedSuperAdmin()
	seedSections(admin)
	seedSettings()

	log.Println("✅ Seeding Complete!")
}

func seedSuperAdmin() models.User {
	log.Println("👤 Ensuring Super Admin...")

	email := os.Getenv("SEED_ADMIN_EMAIL")
	if email == "" {
		email = "admin@newsportal.local"
	}
	password := os.Getenv("SEED_ADMIN_PASSWORD")
	if password == "" {
		password = "ChangeMe@123"
		log.Println("⚠️ SEED_ADMIN_PASSWORD not set, using the default. Change it immediately.")
	}

	var admin models.User
	if err := database.DB.Where("email = ?", email).First(&admin).Error; err == nil {
		log.Printf("👉 Super Admin already exists: %s", admin.Email)
		return admin
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("❌ Failed to hash password: %v", err)
	}

	admin = models.User{
		Name:     "Super Admin",
		Username: "superadmin",
		Email:    email,
		Password: string(hash),
		Role:     models.RoleSuperAdmin,
	}
	if err := database.DB.Create(&admin).Error; err != nil {
		log.Fatalf("❌ Failed to create super admin: %v", err)
	}
	log.Printf("👉 Created Super Admin: %s", admin.Email)
	return admin
}

type sectionSeed struct {
	nameEn, nameHi, nameGu, slug string
	children                     []sectionSeed
}

var defaultSections = []sectionSeed{
	{nameEn: "Gujarat", nameHi: "गुजरात", nameGu: "ગુજરાત", slug: "gujarat", children: []sectionSeed{
		{nameEn: "Daxin Gujarat", nameHi: "दक्षिण गुजरात", nameGu: "દક્ષિણ ગુજરાત", slug: "daxin-gujarat"},
		{nameEn: "Utar Gujarat", nameHi: "उत्तर गुजरात", nameGu: "ઉત્તર ગુજરાત", slug: "utar-gujarat"},
		{nameEn: "Saurashtra", nameHi: "सौराष्ट्र", nameGu: "સૌરાષ્ટ્ર", slug: "saurashtra"},
		{nameEn: "Madhya Gujarat", nameHi: "मध्य गुजरात", nameGu: "મધ્ય ગુજરાત", slug: "madhya-gujarat"},
		{nameEn: "Gandhinagar", nameHi: "गांधीनगर", nameGu: "ગાંધીનગર", slug: "gandhinagar"},
	}},
	{nameEn: "National", nameHi: "राष्ट्रीय", nameGu: "રાષ્ટ્રીય", slug: "national"},
	{nameEn: "International", nameHi: "अंतरराष्ट्रीय", nameGu: "આંતરરાષ્ટ્રીય", slug: "international"},
	{nameEn: "Politics", nameHi: "राजनीति", nameGu: "રાજકારણ", slug: "politics"},
	{nameEn: "Sports", nameHi: "खेल", nameGu: "રમતગમત", slug: "sports"},
	{nameEn: "Entertainment", nameHi: "मनोरंजन", nameGu: "મનોરંજન", slug: "entertainment"},
	{nameEn: "Business", nameHi: "व्यापार", nameGu: "વેપાર", slug: "business"},
	{nameEn: "Technology", nameHi: "प्रौद्योगिकी", nameGu: "ટેક્નોલોજી", slug: "technology"},
	{nameEn: "Lifestyle", nameHi: "जीवन शैली", nameGu: "જીવનશૈલી", slug: "lifestyle"},
	{nameEn: "Religion", nameHi: "धर्म", nameGu: "ધર્મ", slug: "religion"},
}

func seedSections(admin models.User) {
	log.Println("🗂️  Seeding Sections...")
	now := time.Now()
	actor := policy.Identity{UserID: admin.ID, Role: models.RoleSuperAdmin, Authenticated: true}
	for i, seed := range defaultSections {
		parent := upsertSection(seed, nil, i, actor, now)
		for j, child := range seed.children {
			upsertSection(child, &parent.ID, j, actor, now)
		}
	}
}

func upsertSection(seed sectionSeed, parentID *string, order int, actor policy.Identity, now time.Time) models.Section {
	var section models.Section
	if err := database.DB.Where("slug = ?", seed.slug).First(&section).Error; err == nil {
		return section
	}

	section = models.Section{
		NameEn:    seed.nameEn,
		NameHi:    seed.nameHi,
		NameGu:    seed.nameGu,
		Slug:      seed.slug,
		ParentID:  parentID,
		SortOrder: order,
	}
	workflow.ApplyCreate(&section.ReviewState, actor, now)
	if err := database.DB.Create(&section).Error; err != nil {
		log.Fatalf("❌ Failed to seed section %s: %v", seed.slug, err)
	}
	log.Printf("   + %s", seed.slug)
	return section
}

func seedSettings() {
	log.Println("⚙️  Ensuring Site Settings...")
	settings := models.SiteSettings{ID: 1}
	if err := database.DB.Where(models.SiteSettings{ID: 1}).
		Attrs(models.SiteSettings{SiteName: "News Portal"}).
		FirstOrCreate(&settings).Error; err != nil {
		log.Fatalf("❌ Failed to seed settings: %v", err)
	}
}
