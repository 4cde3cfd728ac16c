package dto

type VerseRequest struct {
	Surah int `json:"surah" binding:"required,min=1,max=114"`
	Verse int `json:"verse" binding:"required,min=1"`
}

type VerseResponse struct {
	Number        int     `json:"number"`
	Text          string  `json:"text"`
	Edition       Edition `json:"edition"`
	Surah         Surah   `json:"surah"`
	NumberInSurah int     `json:"numberInSurah"`
	Juz           int     `json:"juz"`
	Manzil        int     `json:"manzil"`
	Page          int     `json:"page"`
	Ruku          int     `json:"ruku"`
	HizbQuarter   int     `json:"hizbQuarter"`
	Sajda         any     `json:"sajda"`
}

type Surah struct {
	Number                 int    `json:"number"`
	Name                   string `json:"name"`
	EnglishName            string `json:"englishName"`
	EnglishNameTranslation string `json:"englishNameTranslation"`
	NumberOfAyahs          int    `json:"numberOfAyahs"`
	RevelationType         string `json:"revelationType"`
}

type Edition struct {
	Identifier  string `json:"identifier"`
	Language    string `json:"language"`
	Name        string `json:"name"`
	EnglishName string `json:"englishName"`
	Format      string `json:"format"`
	Type        string `json:"type"`
	Direction   string `json:"direction"`
}
