package eval

import "github.com/akolanti/GoFaqRag/internal/domain/docModel"

// TestQuestions is the labelled question set used to score retrieval.
// Each entry names the document its answer lives in, ExpectedAnswer is a
// phrase the retrieved context should contain.
var TestQuestions = []docModel.TestCase{
	{
		Question:       "What are the offerings for Sahur and Moreh Pass?",
		ExpectedAnswer: "Sahur Pass RM7 Moreh Pass RM7",
		SourceDocument: "celcomdigi-eratkanikatan-sahur-moreh-pass.pdf",
	},
	{
		Question:       "When is the Samsung Galaxy S25 Series launching?",
		ExpectedAnswer: "starting from 14th February 2025 at 10:00 a.m. onwards",
		SourceDocument: "celcomdigi_samsung_galaxy_s25_series_launch.pdf",
	},
	{
		Question:       "How do I track my Internet pass for Raya Video Pass?",
		ExpectedAnswer: "You can track and manage your account via the Celcom Life or MyDigi app",
		SourceDocument: "celcomdigi_raya_video_internet_pass.pdf",
	},
	{
		Question:       "What happens to unused Internet quota for Sahur Pass?",
		ExpectedAnswer: "Any unused Internet quota will be forfeited upon expiry",
		SourceDocument: "celcomdigi-eratkanikatan-sahur-moreh-pass.pdf",
	},
	{
		Question:       "What rebate do I get when I port-in my postpaid line?",
		ExpectedAnswer: "RM20 x 6months",
		SourceDocument: "celcomdigi_port-in-rebate-offer.pdf",
	},
	{
		Question:       "When exactly does the Raya passes expire?",
		ExpectedAnswer: "valid until 11.59PM on the 4th day of the successful subscription",
		SourceDocument: "celcomdigi_raya_video_internet_pass.pdf",
	},
	{
		Question:       "Where can I trade in my device for the Samsung Galaxy S25?",
		ExpectedAnswer: "by downloading the latest CompAsia app and having it diagnosed and evaluated through the app",
		SourceDocument: "celcomdigi_samsung_galaxy_s25_series_launch.pdf",
	},
	{
		Question:       "Does the RM20 x 6 months port-in rebate come with a contract?",
		ExpectedAnswer: "No. Both the RM20 x 6 months port-in rebates do not come with contract",
		SourceDocument: "celcomdigi_port-in-rebate-offer.pdf",
	},
	{
		Question:       "Can I use the Sahur Pass while roaming?",
		ExpectedAnswer: "No. It is only applicable for domestic use",
		SourceDocument: "celcomdigi-eratkanikatan-sahur-moreh-pass.pdf",
	},
	{
		Question:       "Who is eligible to purchase the Samsung Galaxy S25?",
		ExpectedAnswer: "All customers with new registration (including port-ins and prepaid-to-postpaid conversions) Existing customers without any device contract and no call bar",
		SourceDocument: "celcomdigi_samsung_galaxy_s25_series_launch.pdf",
	},
}
