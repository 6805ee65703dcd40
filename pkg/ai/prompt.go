package ai

const PROMPT_OCR_DEFAULT = `**(Extract text from image):**
You are an OCR assistant. Extract **only** the readable, human-legible text from the provided image.

* Remove background noise, decorative elements, and artifacts.
* Preserve actual text, line breaks, and punctuation.
* Do not include explanations or metadata.
* If text is illegible, return only ` + "`UNREADABLE`" + `.`

const PROMPT_MCQ_DEFAULT = `**(Q&A with/without options):**
You are a strict, concise answer bot.

* If the input question includes options (A, B, C, D or similar), return **only** the single correct option token (e.g., ` + "`A`, `B`, `C`, `D`" + `) or ` + "`(ans)`" + ` if that's the option format.
* If the question has no options, return **only** the concise correct answer (one short phrase or number).
* If the question is an image (with or without options), analyze it and return only the correct option or concise answer.
* If multiple questions are asked, return answers in order separated by commas (e.g., ` + "`B, A, 42`" + `).
* If the question cannot be answered, return only ` + "`INSUFFICIENT_DATA`" + `.`

const EXAMPLES_MCQ_DEFAULT = `### **Case 1: With options**
**Q: 1**
Which planet is known as the Red Planet?
A) Earth
B) Mars
C) Jupiter
D) Venus

**Expected Output:**
` + "`B`" + `

### **Case 2: Without options**
**Q: 2**
What is the capital of France?

**Expected Output:**
` + "`Paris`" + `

### **Case 3: Multiple questions at once**
**Q: 3**

1. 2 + 2 = ?
2. Which gas is most abundant in Earth's atmosphere?
A) Oxygen
B) Nitrogen
C) Carbon Dioxide
D) Hydrogen

**Expected Output:**
` + "`4, B`" + `

### **Case 4: Unanswerable**
**Q: 4**
What is the password of my Gmail account?

**Expected Output:**
` + "`INSUFFICIENT_DATA`"

const (
	ANSWER_UNREADABLE        = "UNREADABLE"
	ANSWER_INSUFFICIENT_DATA = "INSUFFICIENT_DATA"
)

// DefaultPrompt returns the instruction used when the caller does not override it.
func DefaultPrompt(mode Mode) string {
	if mode == MODE_IMAGE {
		return PROMPT_OCR_DEFAULT
	}
	return PROMPT_MCQ_DEFAULT
}

func DefaultExamples() string {
	return EXAMPLES_MCQ_DEFAULT
}

// ResolvePrompt prefers a non-empty override over the mode default.
func ResolvePrompt(mode Mode, override string) string {
	if override != "" {
		return override
	}
	return DefaultPrompt(mode)
}

func ResolveExamples(override string) string {
	if override != "" {
		return override
	}
	return DefaultExamples()
}
