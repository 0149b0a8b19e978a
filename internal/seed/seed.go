package seed

import (
	"context"
	"fmt"

	"aurora-store/internal/domain"
	productrepo "aurora-store/internal/repository/product"
)

// Apply upserts the full catalog: six curated products plus the generated
// range. It is idempotent via the repository's ON CONFLICT upsert, so price
// or copy changes in the seed flow through on the next run.
func Apply(ctx context.Context, repo productrepo.Repository) error {
	for _, p := range Products() {
		if _, err := repo.Upsert(ctx, p); err != nil {
			return fmt.Errorf("upsert product %s: %w", p.SKU, err)
		}
	}
	return nil
}

// Products returns the seed catalog in stable order.
func Products() []domain.Product {
	products := make([]domain.Product, 0, len(baseProducts)+len(extraNames))
	products = append(products, baseProducts...)
	products = append(products, extraProducts(len(baseProducts)+1)...)
	return products
}

var baseProducts = []domain.Product{
	{
		SKU:           "AUR-HEAD-01",
		NameEN:        "Nebula Headset",
		NameAR:        "سماعة نيبولا",
		PriceCents:    12900,
		Image:         "https://images.unsplash.com/photo-1512446816042-444d641267bc?q=80&w=900&auto=format&fit=crop",
		CategoryEN:    "Audio",
		CategoryAR:    "صوتيات",
		BadgeEN:       "New",
		BadgeAR:       "جديد",
		DescriptionEN: "Spatial audio and deep bass in a sleek, matte shell.",
		DescriptionAR: "صوت محيطي وباس عميق في تصميم أنيق.",
	},
	{
		SKU:           "AUR-WATCH-02",
		NameEN:        "Pulse Watch",
		NameAR:        "ساعة بلس",
		PriceCents:    9900,
		Image:         "https://images.unsplash.com/photo-1523275335684-37898b6baf30?q=80&w=900&auto=format&fit=crop",
		CategoryEN:    "Wearables",
		CategoryAR:    "إكسسوارات",
		BadgeEN:       "Limited",
		BadgeAR:       "محدود",
		DescriptionEN: "Ultra smooth display and a battery that keeps up.",
		DescriptionAR: "شاشة انسيابية وبطارية تدوم طوال اليوم.",
	},
	{
		SKU:           "AUR-CAM-03",
		NameEN:        "Lumen Camera",
		NameAR:        "كاميرا لومن",
		PriceCents:    15900,
		Image:         "https://images.unsplash.com/photo-1516035069371-29a1b244cc32?q=80&w=900&auto=format&fit=crop",
		CategoryEN:    "Cameras",
		CategoryAR:    "كاميرات",
		BadgeEN:       "Pro",
		BadgeAR:       "احترافي",
		DescriptionEN: "Capture every highlight with cinematic clarity.",
		DescriptionAR: "التقط كل لحظة بوضوح سينمائي.",
	},
	{
		SKU:           "AUR-SPEAK-04",
		NameEN:        "Aura Speaker",
		NameAR:        "سماعة أورا",
		PriceCents:    8400,
		Image:         "https://images.unsplash.com/photo-1519677100203-a0e668c92439?q=80&w=900&auto=format&fit=crop",
		CategoryEN:    "Audio",
		CategoryAR:    "صوتيات",
		BadgeEN:       "Best seller",
		BadgeAR:       "الأكثر مبيعاً",
		DescriptionEN: "360 degree sound with a floating light ring.",
		DescriptionAR: "صوت محيطي مع حلقة إضاءة عائمة.",
	},
	{
		SKU:           "AUR-LAP-05",
		NameEN:        "Nova Laptop",
		NameAR:        "نوفا لابتوب",
		PriceCents:    189900,
		Image:         "https://images.unsplash.com/photo-1517336714731-489689fd1ca8?q=80&w=900&auto=format&fit=crop",
		CategoryEN:    "Computers",
		CategoryAR:    "حواسيب",
		BadgeEN:       "Studio",
		BadgeAR:       "استوديو",
		DescriptionEN: "Creator-grade performance in a razor-thin frame.",
		DescriptionAR: "أداء احترافي في هيكل فائق النحافة.",
	},
	{
		SKU:           "AUR-BAG-06",
		NameEN:        "Orbit Bag",
		NameAR:        "حقيبة أوربت",
		PriceCents:    7600,
		Image:         "https://images.unsplash.com/photo-1524504388940-b1c1722653e1?q=80&w=900&auto=format&fit=crop",
		CategoryEN:    "Accessories",
		CategoryAR:    "إكسسوارات",
		BadgeEN:       "Eco",
		BadgeAR:       "صديق للبيئة",
		DescriptionEN: "Water-resistant, minimal, and built for travel.",
		DescriptionAR: "مقاومة للماء وبسيطة ومناسبة للسفر.",
	},
}

type bilingual struct {
	en string
	ar string
}

var extraNames = []bilingual{
	{"Solace Tablet", "تابلت سولاس"},
	{"Echo Buds", "سماعات إيكو"},
	{"Flux Keyboard", "لوحة مفاتيح فلكس"},
	{"Glide Mouse", "ماوس غلايد"},
	{"Skyline Drone", "درون سكايلاين"},
	{"Halo Lamp", "مصباح هالو"},
	{"Arc Stand", "ستاند آرك"},
	{"Pulse Charger", "شاحن بلس"},
	{"Core Bottle", "قارورة كور"},
	{"Stride Band", "سوار سترايد"},
	{"Wave Speaker", "سماعة ويف"},
	{"Prism Action Cam", "كاميرا بريزم"},
	{"Nova Monitor", "شاشة نوفا"},
	{"Orbit Dock", "محطة أوربت"},
	{"Vortex Console", "كونسول فورتكس"},
	{"Glide Pad", "باد غلايد"},
	{"Pulse Router", "راوتر بلس"},
	{"Halo Thermostat", "ثرموستات هالو"},
	{"Lumina Lens", "عدسة لومينا"},
	{"Nova Backpack", "حقيبة نوفا"},
	{"Orbit Chair", "كرسي أوربت"},
	{"Rise Desk", "مكتب رايز"},
	{"Nova Phone", "هاتف نوفا"},
	{"Shield Case", "غطاء شيلد"},
	{"Orbit Watch", "ساعة أوربت"},
	{"Volt E-Bike", "دراجة فولت"},
	{"Aura Blender", "خلاط أورا"},
	{"Nova Coffee", "ماكينة نوفا"},
	{"Echo Studio", "إيكو ستوديو"},
	{"Pulse Mic", "مايك بلس"},
	{"Lumen Notebook", "دفتر لومن"},
	{"Arc Pen", "قلم آرك"},
	{"Halo Glasses", "نظارات هالو"},
	{"Orbit Mini", "أوربت ميني"},
	{"Nova Powerbank", "باور بنك نوفا"},
	{"Astra Tripod", "ترايبود أسترا"},
	{"Echo Max", "إيكو ماكس"},
	{"Vault SSD", "قرص فولت"},
	{"Orbit Vacuum", "مكنسة أوربت"},
	{"Arc Light Bar", "شريط ضوء آرك"},
	{"Nova Cap", "قبعة نوفا"},
	{"Pulse Runners", "حذاء بلس"},
	{"Orbit Jacket", "جاكيت أوربت"},
	{"Halo Tote", "توت هالو"},
}

var categories = []bilingual{
	{"Audio", "صوتيات"},
	{"Wearables", "إكسسوارات"},
	{"Cameras", "كاميرات"},
	{"Computers", "حواسيب"},
	{"Accessories", "إكسسوارات"},
	{"Gaming", "ألعاب"},
	{"Home", "منزل"},
	{"Office", "مكتب"},
	{"Smart", "ذكي"},
	{"Fitness", "لياقة"},
}

var badges = []bilingual{
	{"New", "جديد"},
	{"Limited", "محدود"},
	{"Pro", "احترافي"},
	{"Eco", "صديق للبيئة"},
	{"Studio", "استوديو"},
	{"Best seller", "الأكثر مبيعاً"},
	{"Ultra", "فائق"},
	{"Compact", "مضغوط"},
	{"Glow", "متوهج"},
	{"Prime", "برايم"},
}

var descriptions = []bilingual{
	{"Precision-made for daily power.", "مصمم بدقة لقوة يومية."},
	{"Smooth design with bold performance.", "تصميم ناعم مع أداء قوي."},
	{"Lightweight build, premium finish.", "هيكل خفيف وتشطيب فاخر."},
	{"Engineered for speed and clarity.", "مصمم للسرعة والوضوح."},
	{"Clean lines with soft-touch feel.", "خطوط نظيفة وملمس ناعم."},
	{"Balanced performance for modern life.", "أداء متوازن لحياة عصرية."},
	{"Minimal form, maximum impact.", "بساطة في الشكل وتأثير كبير."},
	{"Quiet power with elegant control.", "قوة هادئة وتحكم أنيق."},
}

var images = []string{
	"https://images.unsplash.com/photo-1512446816042-444d641267bc?q=80&w=900&auto=format&fit=crop",
	"https://images.unsplash.com/photo-1523275335684-37898b6baf30?q=80&w=900&auto=format&fit=crop",
	"https://images.unsplash.com/photo-1516035069371-29a1b244cc32?q=80&w=900&auto=format&fit=crop",
	"https://images.unsplash.com/photo-1519677100203-a0e668c92439?q=80&w=900&auto=format&fit=crop",
	"https://images.unsplash.com/photo-1517336714731-489689fd1ca8?q=80&w=900&auto=format&fit=crop",
	"https://images.unsplash.com/photo-1524504388940-b1c1722653e1?q=80&w=900&auto=format&fit=crop",
	"https://images.unsplash.com/photo-1505740420928-5e560c06d30e?q=80&w=900&auto=format&fit=crop",
	"https://images.unsplash.com/photo-1527864550417-7fd91fc51a46?q=80&w=900&auto=format&fit=crop",
	"https://images.unsplash.com/photo-1473968512647-3e447244af8f?q=80&w=900&auto=format&fit=crop",
	"https://images.unsplash.com/photo-1507494924047-60b8ee826ca9?q=80&w=900&auto=format&fit=crop",
	"https://images.unsplash.com/photo-1542751110-97427bbecf20?q=80&w=900&auto=format&fit=crop",
	"https://images.unsplash.com/photo-1498050108023-c5249f4df085?q=80&w=900&auto=format&fit=crop",
}

var basePrices = []int64{2900, 3600, 5200, 6900, 8400, 9900, 12900, 15900, 21900, 29900, 44900, 69900}

// extraProducts generates the rest of the catalog by rotating through the
// category/badge/description/image/price pools, starting at the given
// 1-based catalog position.
func extraProducts(start int) []domain.Product {
	items := make([]domain.Product, 0, len(extraNames))
	for offset, name := range extraNames {
		i := start + offset
		category := categories[(i-1)%len(categories)]
		badge := badges[(i-1)%len(badges)]
		desc := descriptions[(i-1)%len(descriptions)]
		items = append(items, domain.Product{
			SKU:           fmt.Sprintf("AUR-PRD-%02d", i),
			NameEN:        name.en,
			NameAR:        name.ar,
			PriceCents:    basePrices[(i-1)%len(basePrices)],
			Image:         images[(i-1)%len(images)],
			CategoryEN:    category.en,
			CategoryAR:    category.ar,
			BadgeEN:       badge.en,
			BadgeAR:       badge.ar,
			DescriptionEN: desc.en,
			DescriptionAR: desc.ar,
		})
	}
	return items
}
