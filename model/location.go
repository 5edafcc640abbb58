package model

// Location 对应路网中的一个地点 (地铁站、居民区、商圈、医院、景点等)
// Name 是唯一标识，目录建好之后不再修改
type Location struct {
	Name     string  `json:"name" gorm:"primaryKey"`
	Lat      float64 `json:"lat"`
	Lon      float64 `json:"lon"`
	Category string  `json:"category" gorm:"index"` // 如: "metro_station", "commercial"
	Zone     string  `json:"zone"`                  // 地铁票价分区，非地铁地点为 "N/A"
	Seq      int     `json:"seq" gorm:"index"`      // 目录顺序: 地铁站按线路顺序编号，其余地点顺延
}

// 地点类别
const (
	CategoryMetroStation = "metro_station"
	CategoryResidential  = "residential"
	CategoryCommercial   = "commercial"
	CategoryTourist      = "tourist"
	CategoryHospital     = "hospital"
	CategoryEducational  = "educational"
	CategoryMall         = "mall"
	CategoryJunction     = "junction"
	CategoryTransportHub = "transport_hub"
)

// ZoneNA 非地铁地点的分区标记
const ZoneNA = "N/A"

// IsMetro 判断地点是否为地铁站
func (l Location) IsMetro() bool {
	return l.Category == CategoryMetroStation
}

// Position 返回地点的经纬度坐标
func (l Location) Position() Point {
	return Point{Lat: l.Lat, Lon: l.Lon}
}

// Point 代表一个经纬度点 (WGS84)
type Point struct {
	Lat float64 // 纬度
	Lon float64 // 经度
}
