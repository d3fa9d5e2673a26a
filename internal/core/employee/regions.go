package employee

// Regions は state に指定できる地域名の一覧です。
var Regions = []string{
	// 州
	"Andhra Pradesh", "Arunachal Pradesh", "Assam", "Bihar", "Chhattisgarh",
	"Goa", "Gujarat", "Haryana", "Himachal Pradesh", "Jharkhand",
	"Karnataka", "Kerala", "Madhya Pradesh", "Maharashtra", "Manipur",
	"Meghalaya", "Mizoram", "Nagaland", "Odisha", "Punjab",
	"Rajasthan", "Sikkim", "Tamil Nadu", "Telangana", "Tripura",
	"Uttar Pradesh", "Uttarakhand", "West Bengal",

	// 連邦直轄領
	"Andaman and Nicobar Islands", "Chandigarh", "Dadra and Nagar Haveli and Daman and Diu",
	"Delhi", "Jammu and Kashmir", "Ladakh", "Lakshadweep", "Puducherry",

	// 主要都市
	"Mumbai", "New Delhi", "Bengaluru", "Chennai", "Kolkata", "Pune", "Hyderabad",
	"Jaipur", "Udaipur", "Agra", "Varanasi", "Goa (State)",
}

var regionSet = func() map[string]struct{} {
	set := make(map[string]struct{}, len(Regions))
	for _, r := range Regions {
		set[r] = struct{}{}
	}
	return set
}()

// IsKnownRegion は name が Regions に含まれるかを返します。
func IsKnownRegion(name string) bool {
	_, ok := regionSet[name]
	return ok
}
