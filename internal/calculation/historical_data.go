package calculation

import (
	"time"

	"github.com/rpgo/mortgage-simulator/internal/domain"
)

// sp500AnnualReturns holds S&P 500 total returns (dividends included), in percent.
var sp500AnnualReturns = []domain.AnnualReturnPoint{
	{Year: 1928, ReturnPct: 37.88},
	{Year: 1929, ReturnPct: -11.91},
	{Year: 1930, ReturnPct: -28.48},
	{Year: 1931, ReturnPct: -47.07},
	{Year: 1932, ReturnPct: -15.15},
	{Year: 1933, ReturnPct: 46.59},
	{Year: 1934, ReturnPct: -5.94},
	{Year: 1935, ReturnPct: 41.37},
	{Year: 1936, ReturnPct: 27.92},
	{Year: 1937, ReturnPct: -38.59},
	{Year: 1938, ReturnPct: 25.21},
	{Year: 1939, ReturnPct: -5.45},
	{Year: 1940, ReturnPct: -15.29},
	{Year: 1941, ReturnPct: -17.86},
	{Year: 1942, ReturnPct: 12.43},
	{Year: 1943, ReturnPct: 19.45},
	{Year: 1944, ReturnPct: 13.80},
	{Year: 1945, ReturnPct: 30.72},
	{Year: 1946, ReturnPct: -11.87},
	{Year: 1947, ReturnPct: 0.00},
	{Year: 1948, ReturnPct: -0.65},
	{Year: 1949, ReturnPct: 10.26},
	{Year: 1950, ReturnPct: 21.78},
	{Year: 1951, ReturnPct: 16.46},
	{Year: 1952, ReturnPct: 11.78},
	{Year: 1953, ReturnPct: -6.62},
	{Year: 1954, ReturnPct: 45.02},
	{Year: 1955, ReturnPct: 26.40},
	{Year: 1956, ReturnPct: 2.62},
	{Year: 1957, ReturnPct: -14.31},
	{Year: 1958, ReturnPct: 38.06},
	{Year: 1959, ReturnPct: 8.48},
	{Year: 1960, ReturnPct: -2.97},
	{Year: 1961, ReturnPct: 23.13},
	{Year: 1962, ReturnPct: -11.81},
	{Year: 1963, ReturnPct: 18.89},
	{Year: 1964, ReturnPct: 12.97},
	{Year: 1965, ReturnPct: 9.06},
	{Year: 1966, ReturnPct: -13.09},
	{Year: 1967, ReturnPct: 20.09},
	{Year: 1968, ReturnPct: 7.66},
	{Year: 1969, ReturnPct: -11.36},
	{Year: 1970, ReturnPct: 0.10},
	{Year: 1971, ReturnPct: 10.79},
	{Year: 1972, ReturnPct: 15.63},
	{Year: 1973, ReturnPct: -17.37},
	{Year: 1974, ReturnPct: -29.72},
	{Year: 1975, ReturnPct: 31.55},
	{Year: 1976, ReturnPct: 19.15},
	{Year: 1977, ReturnPct: -11.50},
	{Year: 1978, ReturnPct: 1.06},
	{Year: 1979, ReturnPct: 12.31},
	{Year: 1980, ReturnPct: 25.77},
	{Year: 1981, ReturnPct: -9.73},
	{Year: 1982, ReturnPct: 14.76},
	{Year: 1983, ReturnPct: 17.27},
	{Year: 1984, ReturnPct: 1.40},
	{Year: 1985, ReturnPct: 26.33},
	{Year: 1986, ReturnPct: 14.62},
	{Year: 1987, ReturnPct: 2.03},
	{Year: 1988, ReturnPct: 12.40},
	{Year: 1989, ReturnPct: 27.25},
	{Year: 1990, ReturnPct: -6.56},
	{Year: 1991, ReturnPct: 26.31},
	{Year: 1992, ReturnPct: 4.46},
	{Year: 1993, ReturnPct: 7.06},
	{Year: 1994, ReturnPct: -1.54},
	{Year: 1995, ReturnPct: 34.11},
	{Year: 1996, ReturnPct: 20.26},
	{Year: 1997, ReturnPct: 31.01},
	{Year: 1998, ReturnPct: 26.67},
	{Year: 1999, ReturnPct: 19.53},
	{Year: 2000, ReturnPct: -10.14},
	{Year: 2001, ReturnPct: -13.04},
	{Year: 2002, ReturnPct: -23.37},
	{Year: 2003, ReturnPct: 26.38},
	{Year: 2004, ReturnPct: 8.99},
	{Year: 2005, ReturnPct: 3.00},
	{Year: 2006, ReturnPct: 13.62},
	{Year: 2007, ReturnPct: 3.53},
	{Year: 2008, ReturnPct: -38.49},
	{Year: 2009, ReturnPct: 23.45},
	{Year: 2010, ReturnPct: 12.78},
	{Year: 2011, ReturnPct: 0.00},
	{Year: 2012, ReturnPct: 13.41},
	{Year: 2013, ReturnPct: 29.60},
	{Year: 2014, ReturnPct: 11.39},
	{Year: 2015, ReturnPct: -0.73},
	{Year: 2016, ReturnPct: 9.54},
	{Year: 2017, ReturnPct: 19.42},
	{Year: 2018, ReturnPct: -6.24},
	{Year: 2019, ReturnPct: 28.88},
	{Year: 2020, ReturnPct: 16.26},
	{Year: 2021, ReturnPct: 26.89},
	{Year: 2022, ReturnPct: -19.44},
	{Year: 2023, ReturnPct: 24.23},
	{Year: 2024, ReturnPct: 23.31},
}

// treasury1YRates holds 1-year constant maturity Treasury observations, in percent.
// Annual through 1979, semiannual through 2019, quarterly afterwards.
var treasury1YRates = []domain.RatePoint{
	{Date: ymd(1962, 1, 1), RatePct: 2.90},
	{Date: ymd(1963, 1, 1), RatePct: 2.93},
	{Date: ymd(1964, 1, 1), RatePct: 3.55},
	{Date: ymd(1965, 1, 1), RatePct: 3.95},
	{Date: ymd(1966, 1, 1), RatePct: 4.65},
	{Date: ymd(1967, 1, 1), RatePct: 4.61},
	{Date: ymd(1968, 1, 1), RatePct: 5.07},
	{Date: ymd(1969, 1, 1), RatePct: 6.30},
	{Date: ymd(1970, 1, 1), RatePct: 7.91},
	{Date: ymd(1971, 1, 1), RatePct: 4.91},
	{Date: ymd(1972, 1, 1), RatePct: 4.07},
	{Date: ymd(1973, 1, 1), RatePct: 5.94},
	{Date: ymd(1974, 1, 1), RatePct: 7.38},
	{Date: ymd(1975, 1, 1), RatePct: 7.13},
	{Date: ymd(1976, 1, 1), RatePct: 5.87},
	{Date: ymd(1977, 1, 1), RatePct: 5.10},
	{Date: ymd(1978, 1, 1), RatePct: 7.22},
	{Date: ymd(1979, 1, 1), RatePct: 10.04},
	{Date: ymd(1980, 1, 1), RatePct: 12.06},
	{Date: ymd(1980, 7, 1), RatePct: 9.82},
	{Date: ymd(1981, 1, 1), RatePct: 13.82},
	{Date: ymd(1981, 7, 1), RatePct: 16.30},
	{Date: ymd(1982, 1, 1), RatePct: 14.57},
	{Date: ymd(1982, 7, 1), RatePct: 12.92},
	{Date: ymd(1983, 1, 1), RatePct: 8.62},
	{Date: ymd(1983, 7, 1), RatePct: 9.40},
	{Date: ymd(1984, 1, 1), RatePct: 9.90},
	{Date: ymd(1984, 7, 1), RatePct: 11.96},
	{Date: ymd(1985, 1, 1), RatePct: 9.00},
	{Date: ymd(1985, 7, 1), RatePct: 7.88},
	{Date: ymd(1986, 1, 1), RatePct: 7.73},
	{Date: ymd(1986, 7, 1), RatePct: 6.56},
	{Date: ymd(1987, 1, 1), RatePct: 5.87},
	{Date: ymd(1987, 7, 1), RatePct: 6.65},
	{Date: ymd(1988, 1, 1), RatePct: 6.83},
	{Date: ymd(1988, 7, 1), RatePct: 7.75},
	{Date: ymd(1989, 1, 1), RatePct: 9.16},
	{Date: ymd(1989, 7, 1), RatePct: 8.45},
	{Date: ymd(1990, 1, 1), RatePct: 8.21},
	{Date: ymd(1990, 7, 1), RatePct: 8.15},
	{Date: ymd(1991, 1, 1), RatePct: 6.91},
	{Date: ymd(1991, 7, 1), RatePct: 6.26},
	{Date: ymd(1992, 1, 1), RatePct: 4.43},
	{Date: ymd(1992, 7, 1), RatePct: 3.68},
	{Date: ymd(1993, 1, 1), RatePct: 3.51},
	{Date: ymd(1993, 7, 1), RatePct: 3.43},
	{Date: ymd(1994, 1, 1), RatePct: 3.54},
	{Date: ymd(1994, 7, 1), RatePct: 5.28},
	{Date: ymd(1995, 1, 1), RatePct: 7.05},
	{Date: ymd(1995, 7, 1), RatePct: 5.85},
	{Date: ymd(1996, 1, 1), RatePct: 5.09},
	{Date: ymd(1996, 7, 1), RatePct: 5.64},
	{Date: ymd(1997, 1, 1), RatePct: 5.61},
	{Date: ymd(1997, 7, 1), RatePct: 5.60},
	{Date: ymd(1998, 1, 1), RatePct: 5.24},
	{Date: ymd(1998, 7, 1), RatePct: 5.46},
	{Date: ymd(1999, 1, 1), RatePct: 4.51},
	{Date: ymd(1999, 7, 1), RatePct: 5.00},
	{Date: ymd(2000, 1, 1), RatePct: 6.12},
	{Date: ymd(2000, 7, 1), RatePct: 6.21},
	{Date: ymd(2001, 1, 1), RatePct: 5.16},
	{Date: ymd(2001, 7, 1), RatePct: 3.65},
	{Date: ymd(2002, 1, 1), RatePct: 2.14},
	{Date: ymd(2002, 7, 1), RatePct: 1.93},
	{Date: ymd(2003, 1, 1), RatePct: 1.37},
	{Date: ymd(2003, 7, 1), RatePct: 1.08},
	{Date: ymd(2004, 1, 1), RatePct: 1.13},
	{Date: ymd(2004, 7, 1), RatePct: 1.80},
	{Date: ymd(2005, 1, 1), RatePct: 2.78},
	{Date: ymd(2005, 7, 1), RatePct: 3.61},
	{Date: ymd(2006, 1, 1), RatePct: 4.42},
	{Date: ymd(2006, 7, 1), RatePct: 5.11},
	{Date: ymd(2007, 1, 1), RatePct: 5.05},
	{Date: ymd(2007, 7, 1), RatePct: 4.82},
	{Date: ymd(2008, 1, 1), RatePct: 2.71},
	{Date: ymd(2008, 7, 1), RatePct: 2.36},
	{Date: ymd(2009, 1, 1), RatePct: 0.44},
	{Date: ymd(2009, 7, 1), RatePct: 0.56},
	{Date: ymd(2010, 1, 1), RatePct: 0.35},
	{Date: ymd(2010, 7, 1), RatePct: 0.29},
	{Date: ymd(2011, 1, 1), RatePct: 0.29},
	{Date: ymd(2011, 7, 1), RatePct: 0.19},
	{Date: ymd(2012, 1, 1), RatePct: 0.12},
	{Date: ymd(2012, 7, 1), RatePct: 0.17},
	{Date: ymd(2013, 1, 1), RatePct: 0.14},
	{Date: ymd(2013, 7, 1), RatePct: 0.15},
	{Date: ymd(2014, 1, 1), RatePct: 0.13},
	{Date: ymd(2014, 7, 1), RatePct: 0.12},
	{Date: ymd(2015, 1, 1), RatePct: 0.25},
	{Date: ymd(2015, 7, 1), RatePct: 0.31},
	{Date: ymd(2016, 1, 1), RatePct: 0.65},
	{Date: ymd(2016, 7, 1), RatePct: 0.51},
	{Date: ymd(2017, 1, 1), RatePct: 0.85},
	{Date: ymd(2017, 7, 1), RatePct: 1.22},
	{Date: ymd(2018, 1, 1), RatePct: 1.89},
	{Date: ymd(2018, 7, 1), RatePct: 2.44},
	{Date: ymd(2019, 1, 1), RatePct: 2.57},
	{Date: ymd(2019, 7, 1), RatePct: 1.94},
	{Date: ymd(2020, 1, 1), RatePct: 1.53},
	{Date: ymd(2020, 4, 1), RatePct: 0.23},
	{Date: ymd(2020, 7, 1), RatePct: 0.16},
	{Date: ymd(2020, 10, 1), RatePct: 0.13},
	{Date: ymd(2021, 1, 1), RatePct: 0.10},
	{Date: ymd(2021, 4, 1), RatePct: 0.06},
	{Date: ymd(2021, 7, 1), RatePct: 0.07},
	{Date: ymd(2021, 10, 1), RatePct: 0.13},
	{Date: ymd(2022, 1, 1), RatePct: 0.51},
	{Date: ymd(2022, 4, 1), RatePct: 1.64},
	{Date: ymd(2022, 7, 1), RatePct: 2.83},
	{Date: ymd(2022, 10, 1), RatePct: 4.08},
	{Date: ymd(2023, 1, 1), RatePct: 4.65},
	{Date: ymd(2023, 4, 1), RatePct: 4.69},
	{Date: ymd(2023, 7, 1), RatePct: 5.12},
	{Date: ymd(2023, 10, 1), RatePct: 5.39},
	{Date: ymd(2024, 1, 1), RatePct: 4.57},
	{Date: ymd(2024, 4, 1), RatePct: 4.83},
	{Date: ymd(2024, 7, 1), RatePct: 4.35},
	{Date: ymd(2024, 10, 1), RatePct: 4.15},
	{Date: ymd(2025, 1, 1), RatePct: 4.10},
}

func ymd(year, month, day int) time.Time {
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}
