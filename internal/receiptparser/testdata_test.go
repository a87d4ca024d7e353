package receiptparser

// sampleReceipt is OCR output of a grocery receipt, noise included.
const sampleReceipt = `
The Shop Chicago, IL Store #100
Large Eggs SEEEEESESSES 12.4
Cottage Cheese 6.6
Milk Natura1 yogurt 1.3
Cherry Tomatoes 11b 18.3
Bananas 11b 16.1
Cheese Crackers 11.4
wubergin Canned Tuna 12pk 20
Chocolate Cookies 8.1
Chicken breasts 30
baby wipes 2.5
Toilet Paper 1.59
TOTAL $25.97
`
