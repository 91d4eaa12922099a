// Package adapters holds the built-in template catalog.
package adapters

import (
	"bytes"
	"context"
	"fmt"
	"html/template"

	"regalis_backend/internal/feature/templates/domain/entity"
	"regalis_backend/internal/feature/templates/usecase"
)

var placeholderPage = template.Must(template.New("placeholder").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <script src="https://cdn.tailwindcss.com"></script>
    <style>body { font-family: sans-serif; }</style>
</head>
<body class="bg-gray-900 text-white min-h-screen flex flex-col">
    <nav class="p-6 border-b border-gray-800 flex justify-between items-center">
        <h1 class="text-2xl font-bold {{.Accent}}">{{.Brand}}</h1>
        <div class="space-x-4">
            <a href="#" class="hover:text-gray-300">Home</a>
            <a href="#" class="hover:text-gray-300">About</a>
            <a href="#" class="hover:text-gray-300">Contact</a>
        </div>
    </nav>
    <main class="flex-grow flex items-center justify-center p-8 text-center">
        <div>
            <h2 class="text-4xl md:text-6xl font-bold mb-6">Welcome to {{.Brand}}</h2>
            <p class="text-xl text-gray-400 max-w-2xl mx-auto mb-8">This is a starting template. Modify the prompt to customize this design further.</p>
            <button class="bg-white text-black px-8 py-3 rounded-full font-bold hover:bg-gray-200 transition">Get Started</button>
        </div>
    </main>
</body>
</html>
`))

// StaticCatalog serves the built-in templates from memory.
type StaticCatalog struct {
	templates []entity.Template
}

var _ usecase.TemplateRepository = (*StaticCatalog)(nil)

// NewStaticCatalog renders the placeholder code of every built-in template.
func NewStaticCatalog() (*StaticCatalog, error) {
	return newStaticCatalog(builtinTemplates)
}

func newStaticCatalog(defs []entity.Template) (*StaticCatalog, error) {
	out := make([]entity.Template, 0, len(defs))
	for _, t := range defs {
		if !t.Category.Valid() {
			return nil, fmt.Errorf("template %s: unknown category %q", t.ID, t.Category)
		}
		var buf bytes.Buffer
		if err := placeholderPage.Execute(&buf, t); err != nil {
			return nil, fmt.Errorf("template %s: failed to render placeholder: %w", t.ID, err)
		}
		t.Code = buf.String()
		out = append(out, t)
	}
	return &StaticCatalog{templates: out}, nil
}

// All returns every template in catalog order.
func (c *StaticCatalog) All(ctx context.Context) ([]entity.Template, error) {
	out := make([]entity.Template, len(c.templates))
	copy(out, c.templates)
	return out, nil
}

func image(n int) string {
	return fmt.Sprintf("https://picsum.photos/400/300?random=%d", n)
}

var builtinTemplates = []entity.Template{
	// Websites
	{ID: "1", Title: "Royal Jewelry Store", Category: entity.CategoryWebsite, Description: "E-commerce platform with vintage aesthetics.", ImageURL: image(1),
		Prompt: `Create a luxurious e-commerce website for a jewelry store named "Royal Gems". Use a gold and black color scheme. Include a hero section with a vintage background, a featured products grid, and an elegant footer.`,
		Brand:  "Royal Gems", Accent: "text-yellow-500"},
	{ID: "2", Title: "FinTech Dashboard", Category: entity.CategoryWebsite, Description: "Dark mode financial analytics dashboard.", ImageURL: image(2),
		Prompt: "Create a modern FinTech dashboard in dark mode. Include a sidebar navigation, a main area with charts (use placeholders), recent transaction list, and a summary card section.",
		Brand:  "FinTech Pro", Accent: "text-blue-500"},
	{ID: "3", Title: "Travel Portfolio", Category: entity.CategoryWebsite, Description: "Immersive parallax scrolling portfolio.", ImageURL: image(3),
		Prompt: `Create a travel portfolio website with a parallax effect. Use full-screen background images of nature. Sections for "Adventures", "Gallery", and "About Me".`,
		Brand:  "Wanderlust", Accent: "text-green-500"},
	{ID: "4", Title: "SaaS Landing Page", Category: entity.CategoryWebsite, Description: "High-conversion landing page structure.", ImageURL: image(4),
		Prompt: "Create a high-converting SaaS landing page. Include a sticky header, a hero section with a CTA, feature comparison grid, testimonials slider, and a pricing table.",
		Brand:  "SaaSify", Accent: "text-indigo-500"},
	{ID: "5", Title: "Luxury Real Estate", Category: entity.CategoryWebsite, Description: "Showcase properties with elegant galleries.", ImageURL: image(5),
		Prompt: "Create a luxury real estate website. Use a clean white and gold theme. Include a property search bar in the hero, a grid of high-end listings, and an agent profile section.",
		Brand:  "Estate Elite", Accent: "text-yellow-600"},
	{ID: "6", Title: "Artisan Coffee Shop", Category: entity.CategoryWebsite, Description: "Warm, rustic design for local cafes.", ImageURL: image(6),
		Prompt: `Create a cozy coffee shop website with a rustic brown and beige color scheme. Include a menu section, an "Our Story" section, and a location map placeholder.`,
		Brand:  "The Roasted Bean", Accent: "text-orange-400"},
	{ID: "7", Title: "Digital Agency", Category: entity.CategoryWebsite, Description: "Modern, clean agency portfolio with grid layout.", ImageURL: image(7),
		Prompt: "Create a minimalist digital agency portfolio. Use a black and white theme with large typography. Include a services grid, client logo strip, and a contact form.",
		Brand:  "Agency X", Accent: "text-white"},
	{ID: "8", Title: "Personal Brand Blog", Category: entity.CategoryWebsite, Description: "Minimalist blog for thought leaders.", ImageURL: image(8),
		Prompt: `Create a personal branding blog. Clean layout with sidebar. Feature a "Latest Articles" list, an "About Author" widget, and newsletter subscription box.`,
		Brand:  "John Doe Blog", Accent: "text-gray-200"},
	{ID: "9", Title: "Event Conference", Category: entity.CategoryWebsite, Description: "Schedule and speaker management site.", ImageURL: image(9),
		Prompt: "Create a conference event website. Vibrant colors. Include a countdown timer, a speaker lineup grid with photos, and a schedule timeline.",
		Brand:  "TechConf 2025", Accent: "text-purple-500"},
	{ID: "10", Title: "Non-Profit Organization", Category: entity.CategoryWebsite, Description: "Impactful design focused on donations.", ImageURL: image(10),
		Prompt: `Create a non-profit organization website. Green and earth tones. Prominent "Donate" button, an impact statistics section, and a "Get Involved" form.`,
		Brand:  "Earth Save", Accent: "text-green-600"},
	{ID: "11", Title: "Restaurant Booking", Category: entity.CategoryWebsite, Description: "Elegant table reservation system.", ImageURL: image(11),
		Prompt: "Create an elegant restaurant website. Dark theme with food imagery. Include a reservation form, a categorized menu, and a chef bio section.",
		Brand:  "La Table", Accent: "text-red-400"},
	{ID: "12", Title: "Online Learning Platform", Category: entity.CategoryWebsite, Description: "Course listing and video player layout.", ImageURL: image(12),
		Prompt: `Create an online learning platform homepage. Search bar for courses, a "Popular Categories" section, and a grid of course cards with progress bars.`,
		Brand:  "EduLearn", Accent: "text-blue-400"},

	// Apps
	{ID: "13", Title: "Food Delivery App", Category: entity.CategoryApp, Description: "Interactive mobile food ordering UI.", ImageURL: image(13),
		Prompt: "Create a mobile app prototype for food delivery. Bottom navigation bar. Home screen with food categories and restaurant list. Detail screen for a selected dish.",
		Brand:  "QuickEats App", Accent: "text-orange-500"},
	{ID: "14", Title: "Social Connect", Category: entity.CategoryApp, Description: "Modern social media feed prototype.", ImageURL: image(14),
		Prompt: "Create a social media mobile app feed. Mobile layout. Top stories bar (circles), vertical scrolling feed of posts with like/comment buttons.",
		Brand:  "Connect App", Accent: "text-blue-600"},
	{ID: "15", Title: "Fitness Tracker", Category: entity.CategoryApp, Description: "Health monitoring dashboard mobile view.", ImageURL: image(15),
		Prompt: "Create a fitness tracker app UI. Dark mode. Dashboard showing rings for steps, calories, and stand hours. List of recent workouts below.",
		Brand:  "FitTrack", Accent: "text-green-400"},
	{ID: "16", Title: "Crypto Wallet", Category: entity.CategoryApp, Description: "Secure digital asset wallet interface.", ImageURL: image(16),
		Prompt: "Create a cryptocurrency wallet app prototype. Modern gradient background. Total balance display, send/receive buttons, and a list of crypto assets.",
		Brand:  "CryptoVault", Accent: "text-purple-400"},
	{ID: "17", Title: "Task Manager", Category: entity.CategoryApp, Description: "Productivity tool with drag-and-drop tasks.", ImageURL: image(17),
		Prompt: "Create a productivity task app. Clean white interface. List of tasks with checkboxes. Floating action button (+) to add new tasks.",
		Brand:  "TaskMaster", Accent: "text-gray-800"},
	{ID: "18", Title: "Meditation & Calm", Category: entity.CategoryApp, Description: "Soothing UI for mindfulness applications.", ImageURL: image(18),
		Prompt: `Create a meditation app UI. Soft pastel colors. Center play button for daily session. Horizontal scroll for "Sleep Stories" and "Focus Music".`,
		Brand:  "ZenSpace", Accent: "text-teal-400"},
}
