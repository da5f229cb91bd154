package server

import "hersalon/pkg/types"

func testimonials() []types.Testimonial {
	return []types.Testimonial{
		{
			Kind:         types.MediaVideo,
			Name:         "לירז",
			Role:         "בעלת עסק",
			Quote:        "חד משמעית שווה את זה",
			MediaSrc:     "https://res.cloudinary.com/dordmerc0/video/upload/v1768743558/t1_mwaduc.mov",
			FullVideoURL: "https://example.com/full-video-1",
		},
		{
			Kind:         types.MediaVideo,
			Name:         "אופק",
			Role:         "שכירה בהייטק",
			Quote:        "נתת לחלום שלי חיים",
			MediaSrc:     "https://res.cloudinary.com/dordmerc0/video/upload/v1768743526/t2_ti2tc4.mp4",
			FullVideoURL: "https://example.com/full-video-2",
		},
		{
			Kind:         types.MediaVideo,
			Name:         "שירי",
			Role:         "שכירה בהייטק",
			Quote:        "הספרינט הכריח אותי לסיים. זה היה בדיוק מה שהייתי צריכה.",
			MediaSrc:     "testimonials/testimonial-2.mp4",
			FullVideoURL: "https://example.com/full-video-2",
		},
		{
			Kind:     types.MediaImage,
			Role:     "צילום מסך",
			Quote:    "אם לא את הייתי מוותרת",
			MediaSrc: "testimonials/t1.jpg",
			Alt:      "צילום מסך המלצה בוואטסאפ",
		},
		{
			Kind:     types.MediaImage,
			Role:     "צילום מסך",
			Quote:    "לייצר סביבה טובה",
			MediaSrc: "testimonials/t2.png",
			Alt:      "צילום מסך המלצה בוואטסאפ",
		},
		{
			Kind:     types.MediaImage,
			Role:     "צילום מסך",
			Quote:    "מלא דברים שהייתי תקועה איתם התחילו לזרום",
			MediaSrc: "testimonials/t3.png",
			Alt:      "צילום מסך המלצה בוואטסאפ",
		},
	}
}

func includeCards() []types.Card {
	return []types.Card{
		{Icon: "✦", Title: "8 מפגשי עבודה פיזיים", Description: "8 שבועות. ספרינט אחד. 19:00–22:00. מפגשים צפופים שמייצרים תוצר."},
		{Icon: "✦", Title: "דדליין שאי אפשר לברוח ממנו", Description: "אנחנו לא מדברות על העסק אנחנו בונות אותו. כל מפגש מסתיים בהתקדמות אמיתית."},
		{Icon: "✦", Title: "AI + עיצוב חוויה", Description: "כלי AI שחוסכים ימים + אריזה ועיצוב שגורמים למוצר להרגיש מליון דולר."},
		{Icon: "✦", Title: "קבוצה מגובשת שמחזיקה אותך", Description: "נשים שבאות לעבוד. יחד זה קל יותר - ומתקדם מהר יותר."},
	}
}

func sprintSteps() []types.Card {
	return []types.Card{
		{Icon: "✦", Title: "פיצוח הקונספט (The Concept)", Description: "הופכות רעיון אמורפי למוצר ברור עם מודל עסקי."},
		{Icon: "✦", Title: "אריזה ועיצוב (Design)", Description: "עיצוב חוויה ויזואלית כדי שהמוצר יראה מליון דולר (גם אם עשית אותו בערב אחד)."},
		{Icon: "✦", Title: "טכנולוגיה בקליק (Tech)", Description: "דפי נחיתה, אוטומציות וכלי AI כדי לעבוד פחות ולהתקדם יותר."},
		{Icon: "✦", Title: "השקה ומכירה (Launch)", Description: "יוצאים לאור. לא כשיהיה מושלם, אלא עכשיו."},
	}
}

func outcomes() []string {
	return []string{
		"יהיה לך מוצר / שירות / הצעה מוגדרת וברורה",
		"יהיה לך עמוד מכירה או תשתית שמוכנה למכירה",
		"תדעי להסביר במשפט אחד מה את עושה ולמי",
		"תצאי עם תהליך שיווק בסיסי ולא מאיים",
		"ובעיקר – תחווי תחושת מסוגלות ושקט: אני יודעת להזיז דברים",
	}
}

func pricing() types.Pricing {
	return types.Pricing{
		Price:    "₪7,000",
		Note:     "8 מפגשים פיזיים · ליווי לאורך כל הספרינט",
		Seats:    "הצטרפי אלינו לקבוצה מגובשת וסגורה, שנבחרת בקפידה",
		Terms:    "ההרשמה מותנית בשיחת התאמה - אני מחפשת נשים שבאות לעבוד, לא רק לחלום.",
		CTALabel: "לבקשת שיחת התאמה",
	}
}

func faqItems() []types.FAQItem {
	return []types.FAQItem{
		{
			Question: "איפה ומתי נפגשות?",
			Answer:   "מפגש שבועי פיזי בין 19:00 ל-22:00 בשכונת הבילויים ברמת גן, לאורך 8 שבועות.",
		},
		{
			Question: "אני עובדת במשרה מלאה. זה מתאים לי?",
			Answer:   "בדיוק בשבילך. התכנית בנויה סביב ערב אחד בשבוע, והעבודה נעשית במפגש עצמו.",
		},
		{
			Question: "צריך רקע טכני?",
			Answer:   "לא. את הכלים הטכנולוגיים וה-AI אנחנו לומדות ומפעילות יחד, צעד אחר צעד.",
		},
		{
			Question: "מה אם הרעיון שלי עדיין מבולגן?",
			Answer:   "זה המצב ההתחלתי של כמעט כולן. השלב הראשון בספרינט הוא בדיוק פיצוח הקונספט.",
		},
		{
			Question: "איך נרשמים?",
			Answer:   "משאירים פרטים בטופס, ואני חוזרת אלייך לשיחת התאמה קצרה לפני ההרשמה.",
		},
	}
}
