package model

// 高知 (Kochi) 地铁一号线，按线路顺序排列
// 相邻两站之间各建一对 metro 边，顺序不能打乱
var metroLine = []struct {
	name     string
	lat, lon float64
	zone     string
}{
	{"Aluva Metro", 10.1082, 76.3520, "Zone 3"},
	{"Pulinchodu Metro", 10.1012, 76.3445, "Zone 3"},
	{"Companypady Metro", 10.0942, 76.3370, "Zone 3"},
	{"Ambattukavu Metro", 10.0872, 76.3295, "Zone 2"},
	{"Muttom Metro", 10.0802, 76.3220, "Zone 2"},
	{"Kalamassery Metro", 10.0732, 76.3145, "Zone 2"},
	{"Cusat Metro", 10.0662, 76.3070, "Zone 2"},
	{"Pathadipalam Metro", 10.0592, 76.2995, "Zone 2"},
	{"Edapally Metro", 10.0522, 76.2920, "Zone 2"},
	{"Changampuzha Park Metro", 10.0452, 76.2845, "Zone 2"},
	{"Palarivattom Metro", 10.0382, 76.2770, "Zone 2"},
	{"J.L.N Stadium Metro", 10.0312, 76.2695, "Zone 2"},
	{"Kaloor Metro", 10.0242, 76.2620, "Zone 2"},
	{"Lissie Metro", 10.0172, 76.2545, "Zone 1"},
	{"M.G Road Metro", 10.0102, 76.2470, "Zone 1"},
	{"Maharajas Metro", 10.0032, 76.2395, "Zone 1"},
	{"Ernakulam South Metro", 9.9962, 76.2320, "Zone 1"},
	{"Kadavanthra Metro", 9.9892, 76.2245, "Zone 2"},
	{"Elamkulam Metro", 9.9822, 76.2170, "Zone 2"},
	{"Vyttila Metro", 9.9752, 76.2095, "Zone 2"},
	{"Thaikoodam Metro", 9.9682, 76.2020, "Zone 3"},
	{"Petta Metro", 9.9612, 76.1945, "Zone 3"},
	{"Thripunithura Metro", 9.9542, 76.1870, "Zone 3"},
}

// 高知市区常用地点 (非地铁)，在构图时接入最近的地铁站
var popularPlaces = []struct {
	name     string
	lat, lon float64
	category string
}{
	// 居民区/商圈
	{"Aluva Town", 10.1100, 76.3550, CategoryResidential},
	{"Kalamassery Town", 10.0750, 76.3200, CategoryResidential},
	{"Edapally Market", 10.0540, 76.2950, CategoryCommercial},
	{"Kakkanad Infopark", 10.0150, 76.3450, CategoryCommercial},
	{"Palarivattom Junction", 10.0400, 76.2800, CategoryJunction},
	{"M.G Road Market", 10.0120, 76.2500, CategoryCommercial},
	{"Marine Drive", 9.9750, 76.2800, CategoryTourist},
	{"Ernakulam South Bus Stand", 9.9980, 76.2350, CategoryTransportHub},
	{"Fort Kochi", 9.9650, 76.2420, CategoryTourist},
	{"Vyttila Hub", 9.9770, 76.3100, CategoryTransportHub},
	{"Kakkanad Seaport Airport Road", 10.0050, 76.3350, CategoryCommercial},
	{"Thripunithura Town", 9.9560, 76.1900, CategoryResidential},

	// 医院
	{"Medical Trust Hospital Edapally", 10.0510, 76.2880, CategoryHospital},
	{"Lakeshore Hospital Kochi", 9.9800, 76.2950, CategoryHospital},
	{"Amrita Hospital Kochi", 10.0430, 76.3100, CategoryHospital},

	// 高校
	{"CUSAT Campus", 10.0650, 76.3050, CategoryEducational},
	{"Rajagiri College Kakkanad", 10.0200, 76.3400, CategoryEducational},

	// 商场
	{"Lulu Mall Edapally", 10.0450, 76.3000, CategoryMall},
	{"Oberon Mall", 10.0340, 76.2780, CategoryMall},
	{"Centre Square Mall", 9.9880, 76.2880, CategoryMall},
}

// DefaultCatalog 返回内置的高知路网地点目录: 23 个地铁站 + 20 个常用地点
// Seq 记录目录顺序，地铁站的 Seq 升序即线路顺序，数据库往返后顺序不变
func DefaultCatalog() []Location {
	catalog := make([]Location, 0, len(metroLine)+len(popularPlaces))

	seq := 0
	for _, s := range metroLine {
		seq++
		catalog = append(catalog, Location{
			Name:     s.name,
			Lat:      s.lat,
			Lon:      s.lon,
			Category: CategoryMetroStation,
			Zone:     s.zone,
			Seq:      seq,
		})
	}

	for _, p := range popularPlaces {
		seq++
		catalog = append(catalog, Location{
			Name:     p.name,
			Lat:      p.lat,
			Lon:      p.lon,
			Category: p.category,
			Zone:     ZoneNA,
			Seq:      seq,
		})
	}

	return catalog
}
