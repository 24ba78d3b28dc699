package notify

// Email subjects and sender.
const (
	SubjectIssue   = "מועדון דוקאטי ישראל - כרטיס חבר וירטואלי"
	SubjectRenewal = "מועדון דוקאטי ישראל - בקרוב תפוג החברות שלך במועדון"

	DefaultSender      = "Ducati Israel <noreply@docil.co.il>"
	DefaultSMSSenderID = "DOCIL"
)

// Placeholders understood by the templates.
const (
	KeyHebrewFullName = "hebrew_full_name"
	KeyCardURL        = "card_url"
	KeyWalletLink     = "google_wallet_link"
	KeyMemberCode     = "ducati_member_code"
	KeyExpiration     = "membership_expiration"
	KeyContactPhone   = "contact_phone_number"
)

// Templates is the set of message bodies used by the Dispatcher.
type Templates struct {
	EmailIssue         string
	SMSIssue           string
	MissingMemberCode  string
	EmailRenewal       string
	EmailRenewalNoCode string
	SMSRenewal         string
	SMSRenewalNoCode   string
}

// DefaultTemplates returns the Hebrew club templates. The NoCode renewal
// variants are used for members without a numeric member code.
func DefaultTemplates() Templates {
	return Templates{
		EmailIssue:         emailIssueTemplate,
		SMSIssue:           smsIssueTemplate,
		MissingMemberCode:  missingMemberCodeTemplate,
		EmailRenewal:       emailRenewalTemplate,
		EmailRenewalNoCode: emailRenewalNoCodeTemplate,
		SMSRenewal:         smsRenewalTemplate,
		SMSRenewalNoCode:   smsRenewalNoCodeTemplate,
	}
}

const emailIssueTemplate = `
היי {{hebrew_full_name}},
שמחים שהצטרפת למועדון דוקאטי!

הונפק לך כרטיס חבר דיגיטלי בכתובת {{card_url}}
להוספת הכרטיס ל-Google Wallet: {{google_wallet_link}}

אנא שמור על כתובת זו במועדפים.

אנא הצג כרטיס זה בעת קבלת שירות או טיפול או רכישת אביזרים כדי לקבל את ההטבות המגיעות לחברי המועדון.
שים לב לתוקף הרישום שלך. כחודש לפני תום החברות תקבל התראה לחידוש. במידה ולא תחדש למרות ההתראות, החברות שלך תפוג תוקף אוטומטית.

<img width="180" src="https://card.docil.co.il/preview.png">
`

const smsIssueTemplate = `
היי {{hebrew_full_name}},
שמחים שהצטרפת למועדון דוקאטי!
הונפק לך כרטיס חבר דיגיטלי
{{card_url}}
להוספת הכרטיס ל-Google Wallet: {{google_wallet_link}}
`

const missingMemberCodeTemplate = `שים לב: הכרטיס הדיגיטלי שלך איננו מכיל מספר חבר כיוון שלא ביצעת רישום לאתר של דוקאטי העולמית.
אנא גש לאתר המועדון בלינק הבא ובצע את הרישום לאתר של דוקאטי. לאחר מכן כרטיסך יעודכן עם מספר החבר החדש שלך:
https://www.docil.co.il/newreg`

const emailRenewalTemplate = `
היי {{hebrew_full_name}},
זו הודעה ממועדון דוקאטי בישראל.

בתאריך {{membership_expiration}} תפוג החברות שלך במועדון.
כדי לא לאבד את הותק שלך ואת ההטבות של המועדון עליך לחדש חברות וזאת לפני שהיא תפוג.

לחידוש חברות במועדון, לחץ על הקישור לטופס בהמשך. יש לשים לב שבטופס צריך לסמן "הייתי כבר חבר" ולהכניס את מספר החבר שלך.

לנוחיותך, מספר החבר שלך במועדון: {{ducati_member_code}}.

טופס הרשמה\חידוש חברות - https://www.docil.co.il/register

---

קיבלת הודעה זו כיוון שאישרת קבלת הודעות אלקטרוניות. 
במידה ואינך מעוניין להמשיך חברותך במועדון ו/או לקבל הודעות נוספות אנא שלח "הסר" בוואטסאפ למספר הבא:
https://wa.me/{{contact_phone_number}}

<img width="180" src="https://card.docil.co.il/preview.png">

`

const emailRenewalNoCodeTemplate = `
היי {{hebrew_full_name}},
זו הודעה ממועדון דוקאטי בישראל.

בתאריך {{membership_expiration}} תפוג החברות שלך במועדון.
כדי לא לאבד את הותק שלך ואת ההטבות של המועדון עליך לחדש חברות וזאת לפני שהיא תפוג.

לחידוש חברות במועדון, לחץ על הקישור לטופס בהמשך. יש לשים לב שבטופס צריך לסמן "הייתי כבר חבר". שמנו לב שעדיין לא סיפקת מספר חבר באתר דוקאטי העולמי ונבקש שבאותה הזדמנות תעשה זאת.

טופס הרשמה\חידוש חברות - https://www.docil.co.il/register

---

קיבלת הודעה זו כיוון שאישרת קבלת הודעות אלקטרוניות. 
במידה ואינך מעוניין להמשיך חברותך במועדון ו/או לקבל הודעות נוספות אנא שלח "הסר" בוואטסאפ למספר הבא:
https://wa.me/{{contact_phone_number}}

<img width="180" src="https://card.docil.co.il/preview.png">

`

const smsRenewalTemplate = `
היי {{hebrew_full_name}},
זו הודעה ממועדון דוקאטי בישראל.

בתאריך {{membership_expiration}} תפוג החברות שלך במועדון.
כדי לא לאבד את הותק שלך ואת ההטבות של המועדון עליך לחדש חברות וזאת לפני שהיא תפוג.

לחידוש חברות במועדון, לחץ על הקישור לטופס בהמשך. יש לשים לב שבטופס צריך לסמן "הייתי כבר חבר" ולהכניס את מספר החבר שלך.

לנוחיותך, מספר החבר שלך במועדון: {{ducati_member_code}}.

טופס הרשמה\חידוש חברות - https://www.docil.co.il/register

---

קיבלת הודעה זו כיוון שאישרת קבלת הודעות אלקטרוניות. 
במידה ואינך מעוניין להמשיך חברותך במועדון ו/או לקבל הודעות נוספות אנא שלח "הסר" בוואטסאפ למספר הבא:
https://wa.me/{{contact_phone_number}}
`

const smsRenewalNoCodeTemplate = `
היי {{hebrew_full_name}},
זו הודעה ממועדון דוקאטי בישראל.

בתאריך {{membership_expiration}} תפוג החברות שלך במועדון.
כדי לא לאבד את הותק שלך ואת ההטבות של המועדון עליך לחדש חברות וזאת לפני שהיא תפוג.

לחידוש חברות במועדון, לחץ על הקישור לטופס בהמשך. יש לשים לב שבטופס צריך לסמן "הייתי כבר חבר". שמנו לב שעדיין לא סיפקת מספר חבר באתר דוקאטי העולמי ונבקש שבאותה הזדמנות תעשה זאת.

טופס הרשמה\חידוש חברות - https://www.docil.co.il/register

---

קיבלת הודעה זו כיוון שאישרת קבלת הודעות אלקטרוניות. 
במידה ואינך מעוניין להמשיך חברותך במועדון ו/או לקבל הודעות נוספות אנא שלח "הסר" בוואטסאפ למספר הבא:
https://wa.me/{{contact_phone_number}}
`
