package record

// Field keys used by the core. The spreadsheet headers use a full-width space
// between the group and the attribute (e.g. "届出者　氏名"); the constants keep
// that spelling verbatim.
const (
	FieldID        = "house_id"
	FieldSiteNo    = "須賀利No"
	FieldStatus    = "状態"
	FieldDistrict  = "所属する地区"
	FieldUpdatedAt = "更新日"
	FieldPhoto     = "image_path1"

	FieldApplicantName    = "届出者　氏名"
	FieldApplicantAddress = "届出者　住所"
	FieldApplicantPhone   = "届出者　電話番号"
	FieldOwnerName        = "所有者　氏名"
	FieldOwnerAddress     = "所有者　住所"
	FieldOwnerPhone       = "所有者　電話番号"

	FieldSingleStory = "平屋"
	FieldTwoStory    = "二階建"
	FieldThreeStory  = "三階建"
	FieldHasStorage  = "倉庫有"
	FieldHasYard     = "庭有"
	FieldHasGarage   = "ガレージ有"
)

// EmergencyContact returns the field key for attribute of the n-th emergency
// contact (1-based). Attributes are 氏名, 続柄, 住所, 電話番号 and メールアドレス.
func EmergencyContact(n int, attribute string) string {
	return "緊急連絡先" + circled(n) + "　" + attribute
}

// Resident returns the field key for attribute of the n-th resident
// (1-based). Attributes are 入居者名, 年齢 and 介護状況.
func Resident(n int, attribute string) string {
	return attribute + circled(n)
}

// EmergencyContactAttributes lists the per-contact attributes in print order.
var EmergencyContactAttributes = []string{"氏名", "続柄", "住所", "電話番号", "メールアドレス"}

// ResidentAttributes lists the per-resident attributes in print order.
var ResidentAttributes = []string{"入居者名", "年齢", "介護状況"}

func circled(n int) string {
	if n < 1 || n > 20 {
		return ""
	}
	return string(rune('①' + n - 1))
}
