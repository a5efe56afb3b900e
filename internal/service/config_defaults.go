package service

import "movingco/internal/db"

// Seed data written into empty tables on first run. The reset
// endpoints restore exactly these values.

var defaultPricingValues = map[string]string{
	"intercityPricing": `{
		"Vancouver": {"Calgary": 500, "Winnipeg": 650},
		"Calgary": {"Vancouver": 500, "Winnipeg": 500},
		"Winnipeg": {"Vancouver": 650, "Calgary": 500}
	}`,
	"intercityLocalServiceRate": `120`,
	"localMovingStandardArea": `{
		"withVehicle": {"baseRate": 80, "additionalPersonFee": 40},
		"withoutVehicle": {"baseRate": 45}
	}`,
	"localMovingPremiumArea": `{
		"withVehicle": {"baseRate": 90, "additionalPersonFee": 40},
		"withoutVehicle": {"baseRate": 55}
	}`,
	"localMovingSettings": `{"minimumHours": 2, "depositRequired": 3, "depositCAD": 60}`,
	"storageItems": `{
		"carryOnLuggage": {"name": "Carry-on Luggage (≤115cm)", "price": 15, "icon": "Flight", "description": "Sum of three sides not exceeding 115cm (including wheels)", "billing": "recurring"},
		"checkedLuggage": {"name": "Checked Luggage (≤165cm)", "price": 25, "icon": "Luggage", "description": "Sum of three sides not exceeding 165cm (including wheels)", "billing": "recurring"},
		"bicycle": {"name": "Bicycle", "price": 35, "icon": "DirectionsBike", "description": "Battery not included, battery must be stored separately", "billing": "recurring"},
		"tv": {"name": "TV", "price": 40, "icon": "Tv", "description": "Without box (if with box, calculated as per box)", "billing": "recurring"},
		"gamingChair": {"name": "Gaming Chair", "price": 35, "icon": "Chair", "description": "Separate chair without detached footrest", "billing": "recurring"},
		"twinBed": {"name": "Twin Mattress (Bed Frame x2)", "price": 45, "icon": "Bed", "description": "Twin mattress storage, bed frame price x2 if needed", "billing": "recurring"},
		"fullBed": {"name": "Full Mattress (Bed Frame x2)", "price": 50, "icon": "Bed", "description": "Full mattress storage, bed frame price x2 if needed", "billing": "recurring"},
		"queenBed": {"name": "Queen Mattress (Bed Frame x2)", "price": 70, "icon": "Bed", "description": "Queen mattress storage, bed frame price x2 if needed", "billing": "recurring"},
		"kingBed": {"name": "King Mattress (Bed Frame x2)", "price": 70, "icon": "Bed", "description": "King mattress storage, bed frame price x2 if needed", "billing": "recurring"},
		"smallBox": {"name": "Home Depot Small Box (≤110cm)", "price": 15, "icon": "Inventory2", "description": "Sum of three sides not exceeding 110cm", "billing": "recurring"},
		"mediumBox": {"name": "Home Depot Medium Box (≤135cm)", "price": 18, "icon": "Inventory2", "description": "Sum of three sides not exceeding 135cm", "billing": "recurring"},
		"largeBox": {"name": "Home Depot Large Box (≤150cm)", "price": 22, "icon": "Inventory2", "description": "Sum of three sides not exceeding 150cm", "billing": "recurring"},
		"extraLargeBox": {"name": "Home Depot Extra Large Box (≤165cm)", "price": 25, "icon": "Inventory2", "description": "Sum of three sides not exceeding 165cm", "billing": "recurring"},
		"superLargeBox": {"name": "Home Depot Super Large Box (≤200cm)", "price": 35, "icon": "Inventory2", "description": "Sum of three sides not exceeding 200cm", "billing": "recurring"},
		"volumeStorage": {"name": "Volume Storage (≤1m³)", "price": 45, "icon": "Storage", "description": "For items that cannot be categorized, calculated by volume", "billing": "recurring"},
		"onlyBoxPickupNoStairs": {"name": "Only Box Pickup Service (Every 10 pieces) - No Stairs", "price": 40, "icon": "LocalShipping", "description": "One-time fee for box pickup service without stairs", "billing": "oneTime"},
		"onlyBoxPickupWithStairs": {"name": "Only Box Pickup Service (Every 10 pieces) - With Stairs", "price": 80, "icon": "LocalShipping", "description": "One-time fee for box pickup service with stairs", "billing": "oneTime"},
		"furniturePickupNoStairs": {"name": "Furniture Pickup Service - No Stairs", "price": 160, "icon": "LocalShipping", "description": "One-time fee for furniture pickup service without stairs", "billing": "oneTime"},
		"furniturePickupAssembly": {"name": "Furniture Pickup Service - With Assembly", "price": 260, "icon": "LocalShipping", "description": "One-time fee for furniture pickup service with disassembly/assembly", "billing": "oneTime"}
	}`,
}

var defaultCities = []db.City{
	{Name: "Vancouver", Icon: "🏙️", IsActive: true},
	{Name: "Calgary", Icon: "🏔️", IsActive: true},
	{Name: "Winnipeg", Icon: "🏞️", IsActive: true},
}

var defaultCityDisplayNames = map[string]string{
	"Vancouver": "温哥华",
	"Calgary":   "卡尔加里",
	"Winnipeg":  "温尼伯",
}

var defaultSystemSettings = map[string]string{
	"websiteInfo.titleZh":       "搬家服务公司",
	"websiteInfo.titleEn":       "Moving Company",
	"websiteInfo.descriptionZh": "专业的搬家服务，提供同城搬家、跨省搬家、家具存储等服务",
	"websiteInfo.descriptionEn": "Professional moving services including local moving, intercity moving, and furniture storage",
	"websiteInfo.companyName":   "搬家服务公司",
	"websiteInfo.phone":         "+1-xxx-xxx-xxxx",
	"websiteInfo.email":         "info@movingcompany.com",
	"websiteInfo.address":       "Vancouver, BC, Canada",
	"taxAndFees.gstRate":        "5",
	"taxAndFees.pstRate":        "7",
	"taxAndFees.gstEnabled":     "true",
	"taxAndFees.pstEnabled":     "true",
	"taxAndFees.fuelSurcharge":  "3",
	"taxAndFees.fuelSurchargeEnabled": "true",
	"taxAndFees.insuranceRate":        "1",
	"taxAndFees.insuranceEnabled":     "true",
	"taxAndFees.packagingFee":         "20",
	"taxAndFees.packagingEnabled":     "true",
}
